package exporter

import (
	"fmt"
	"os"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/homonym-flow/internal/sentence"
	"github.com/xuri/excelize/v2"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	fontName        = "Times New Roman"
	titleSize       = 20
	stampSize       = 10
	bodySize        = 12
)

func writeText(_ string, text, path string, _ time.Time) error {
	return os.WriteFile(path, []byte(text+"\n"), 0644)
}

func writeMarkdown(title, text, path string, generated time.Time) error {
	md := fmt.Sprintf("# %s\n\n**Generated:** %s\n\n---\n\n## Transcription\n\n%s\n",
		title,
		generated.Format(timestampLayout),
		text,
	)
	return os.WriteFile(path, []byte(md), 0644)
}

func writeDocx(title, text, path string, generated time.Time) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, titleSize)
	addRun(doc.AddParagraph(""), "Generated: "+generated.Format(timestampLayout), false, stampSize)
	doc.AddParagraph("")
	addRun(doc.AddParagraph(""), text, false, bodySize)

	return doc.SaveTo(path)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

const sheetName = "Transcription"

// writeXlsx lays the transcript out one sentence per row under a small header.
func writeXlsx(title, text, path string, generated time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	rows := [][]any{
		{title},
		{"Generated", generated.Format(timestampLayout)},
		{},
		{"#", "Sentence"},
	}
	for i, s := range sentence.Split(text) {
		rows = append(rows, []any{i + 1, s})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 100)

	return f.SaveAs(path)
}
