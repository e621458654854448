package report

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/chech0x/youtube-cue-generator/internal/cues"
	"github.com/chech0x/youtube-cue-generator/internal/summary"
	"github.com/chech0x/youtube-cue-generator/internal/transcript"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// WriteCuesDocx writes the cue sheet as a styled docx: a bold title, then
// one line per cue with the timestamp in bold.
func WriteCuesDocx(title string, list []cues.Cue, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addTitle(doc, title)
	doc.AddParagraph("")

	for _, c := range list {
		p := doc.AddParagraph("")
		p.AddText(transcript.FormatClock(c.Seconds)).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		p.AddText("  " + c.Title).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}

// WriteSummaryDocx writes the summary as a styled docx: a bold title and
// one bullet per point, with the reference in bold when present.
func WriteSummaryDocx(title string, points []summary.Point, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addTitle(doc, title)
	doc.AddParagraph("")

	for _, point := range points {
		p := doc.AddParagraph("")
		text := point.Text
		if point.Emoji != "" {
			text = point.Emoji + " " + text
		}
		p.AddText("• " + text).Font(fontName).Size(fontSize).Color("000000")
		if point.Reference != "" {
			p.AddText(" (" + point.Reference + ")").Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}

	return doc.SaveTo(outputPath)
}

func addTitle(doc *docx.RootDoc, title string) {
	p := doc.AddParagraph("")
	p.AddText(title).Font(fontName).Size(titleSize).Color("000000").Bold(true)
}
