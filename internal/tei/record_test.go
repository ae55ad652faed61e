package tei_test

import (
	"strings"
	"testing"

	"corhoh/internal/metadata"
	"corhoh/internal/tei"
	"corhoh/internal/transcript"
)

func TestRenderRecordLayout(t *testing.T) {
	rec := metadata.NewRecord(map[string]string{
		"Documents ID": " 7 ",
		"Name":         "  Anna & Co  ",
		"Length":       "1:00",
	})
	turns := []transcript.Turn{
		{Kind: transcript.Question, Label: "Q1", Text: "Where?"},
		{Kind: transcript.Answer, Label: "A1", Text: "Lodz <1939>"},
	}

	got := tei.RenderRecord(rec, turns)

	want := strings.Join([]string{
		`        <text id="7">`,
		`            <meta>`,
		`                <Oral_History_Details>`,
		`                    <Documents_ID>7</Documents_ID>`,
		`                    <Rec_Date></Rec_Date>`,
		`                    <Rec_Length>1:00</Rec_Length>`,
		`                    <A_Number></A_Number>`,
		`                    <Q_Number></Q_Number>`,
		`                    <permission_type></permission_type>`,
		`                    <Link></Link>`,
		`                </Oral_History_Details>`,
		`                <Individual_Meta_Data>`,
		`                    <Name>Anna &amp; Co</Name>`,
		`                    <DOB></DOB>`,
		`                    <Gender></Gender>`,
		`                    <Born></Born>`,
		`                    <Ghetto></Ghetto>`,
		`                    <Camp></Camp>`,
		`                    <Imm_Date></Imm_Date>`,
		`                    <Imm_Destination></Imm_Destination>`,
		`                </Individual_Meta_Data>`,
		`            </meta>`,
		`            <text>`,
		`                <body>`,
		`                    <div type="interview">`,
		`                        <head>Interview Transcript</head>`,
		`                        <div type="question">`,
		`                            <speaker role="interviewer">Q1</speaker>`,
		`                            <u>Where?</u>`,
		`                        </div>`,
		`                        <div type="answer">`,
		`                            <speaker role="interviewee">A1</speaker>`,
		`                            <u>Lodz &lt;1939&gt;</u>`,
		`                        </div>`,
		`                    </div>`,
		`                </body>`,
		`            </text>`,
		`        </text>`,
	}, "\n")

	if got.XML != want {
		t.Fatalf("unexpected record XML:\n%s\nwant:\n%s", got.XML, want)
	}
	if got.Questions != 1 || got.Answers != 1 {
		t.Fatalf("expected 1/1 counts, got %d/%d", got.Questions, got.Answers)
	}
}

func TestRenderRecordWithoutTurns(t *testing.T) {
	rec := metadata.NewRecord(map[string]string{"Documents ID": "12"})
	got := tei.RenderRecord(rec, nil)

	if got.Questions != 0 || got.Answers != 0 {
		t.Fatalf("expected zero counts, got %d/%d", got.Questions, got.Answers)
	}
	if strings.Contains(got.XML, `<div type="question">`) || strings.Contains(got.XML, `<div type="answer">`) {
		t.Fatal("expected no turn divs")
	}
	tail := "<head>Interview Transcript</head>\n                    </div>\n"
	if !strings.Contains(got.XML, tail) {
		t.Fatalf("expected interview div to close right after head:\n%s", got.XML)
	}
	if strings.HasSuffix(got.XML, "\n") {
		t.Fatal("record fragment must not end with a newline")
	}
}

func TestRenderRecordEscapesID(t *testing.T) {
	rec := metadata.NewRecord(map[string]string{"Documents ID": `x"&<y>`})
	got := tei.RenderRecord(rec, nil)

	if !strings.HasPrefix(got.XML, `        <text id="x&quot;&amp;&lt;y&gt;">`) {
		t.Fatalf("unexpected id attribute: %s", strings.SplitN(got.XML, "\n", 2)[0])
	}
	if !strings.Contains(got.XML, "<Documents_ID>x\"&amp;&lt;y&gt;</Documents_ID>") {
		t.Fatal("expected Documents_ID element to escape content")
	}
}

func TestRenderRecordCountsEveryTurn(t *testing.T) {
	turns := []transcript.Turn{
		{Kind: transcript.Question, Label: "Q1"},
		{Kind: transcript.Question, Label: "Q2"},
		{Kind: transcript.Answer, Label: "A1"},
		{Kind: transcript.Question, Label: "Q3"},
	}
	got := tei.RenderRecord(metadata.NewRecord(nil), turns)
	if got.Questions != 3 || got.Answers != 1 {
		t.Fatalf("expected 3/1, got %d/%d", got.Questions, got.Answers)
	}
	if n := strings.Count(got.XML, "<u>"); n != len(turns) {
		t.Fatalf("expected %d utterances, got %d", len(turns), n)
	}
	if !strings.Contains(got.XML, `<text id="">`) {
		t.Fatal("expected empty id for record without Documents ID")
	}
}

func TestRenderRecordIsDeterministic(t *testing.T) {
	rec := metadata.NewRecord(map[string]string{"Documents ID": "3", "Camp": "Auschwitz"})
	turns := transcript.Parse("Q1: a\nA1: b\n")
	first := tei.RenderRecord(rec, turns)
	second := tei.RenderRecord(rec, turns)
	if first != second {
		t.Fatal("expected identical output for identical input")
	}
}

func TestColumnsFollowOutputOrder(t *testing.T) {
	cols := tei.Columns()
	if len(cols) != len(tei.DetailFields)+len(tei.IndividualFields) {
		t.Fatalf("unexpected column count %d", len(cols))
	}
	if cols[0] != metadata.IDColumn || cols[2] != "Length" || cols[len(cols)-1] != "Imm_Destination" {
		t.Fatalf("unexpected column order: %v", cols)
	}
}
