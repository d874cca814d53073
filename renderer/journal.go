package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/journal"
	md "github.com/nao1215/markdown"
)

// digestHeader writes the title and the figures shared by every digest.
func digestHeader(doc *md.Markdown, title string, d journal.Digest) {
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("*%s to %s (%s)*", d.Range.From, d.Range.To, d.Range.Identifier()))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Entries"), md.Bold(strconv.Itoa(d.Total))},
		Rows:      [][]string{{"This period", strconv.Itoa(d.InRange)}},
	})

	if len(d.Categories) == 0 {
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Entries"},
	}
	for _, c := range d.Categories {
		table.Rows = append(table.Rows, []string{c.Value, strconv.Itoa(c.N)})
	}
	doc.H2("Categories")
	doc.Table(table)
}

// Assessments renders the self-assessment digest.
func Assessments(d journal.AssessmentDigest) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	digestHeader(doc, "Self-Assessment", d.Digest)

	if len(d.Averages) > 0 {
		doc.H2("Average Scores")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Area", "Score", "Assessments"},
		}
		for _, a := range d.Averages {
			table.Rows = append(table.Rows, []string{a.Area, a.Score.StringFixed(1), strconv.Itoa(a.N)})
		}
		doc.Table(table)
	}
	return doc.String()
}

// Notes renders the knowledge base digest.
func Notes(d journal.NoteDigest) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	digestHeader(doc, "Knowledge Base", d.Digest)

	if len(d.Top) > 0 {
		doc.H2("Most Important")
		items := make([]string, 0, len(d.Top))
		for _, n := range d.Top {
			item := fmt.Sprintf("%s (%s, %d)", n.Content, n.Topic, n.Importance)
			if len(n.Tags) > 0 {
				item += " #" + strings.Join(n.Tags, " #")
			}
			items = append(items, item)
		}
		doc.OrderedList(items...)
	}
	return doc.String()
}

// Insights renders the learning log digest.
func Insights(d journal.InsightDigest) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	digestHeader(doc, "Learning Log", d.Digest)

	doc.PlainText(fmt.Sprintf("%s %d day(s)", md.Bold("Streak:"), d.Streak))

	if len(d.Recent) > 0 {
		doc.H2("Lessons")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Date", "Topic", "Lesson"},
		}
		for _, i := range d.Recent {
			lesson := i.Lesson
			if i.Source != "" {
				lesson += " (" + i.Source + ")"
			}
			table.Rows = append(table.Rows, []string{i.At.Format("2006-01-02"), i.Topic, lesson})
		}
		doc.Table(table)
	}
	return doc.String()
}
