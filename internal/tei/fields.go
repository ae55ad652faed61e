package tei

import "corhoh/internal/metadata"

// Field maps one metadata column onto one element of the record's meta block.
type Field struct {
	Element string
	Column  string
}

// DetailFields describe the interview itself (<Oral_History_Details>).
var DetailFields = []Field{
	{Element: "Documents_ID", Column: metadata.IDColumn},
	{Element: "Rec_Date", Column: "Rec_Date"},
	{Element: "Rec_Length", Column: "Length"},
	{Element: "A_Number", Column: "A_#"},
	{Element: "Q_Number", Column: "Q_#"},
	{Element: "permission_type", Column: "permission_type"},
	{Element: "Link", Column: "Link"},
}

// IndividualFields describe the interviewee (<Individual_Meta_Data>).
var IndividualFields = []Field{
	{Element: "Name", Column: "Name"},
	{Element: "DOB", Column: "DOB"},
	{Element: "Gender", Column: "Gender"},
	{Element: "Born", Column: "Born"},
	{Element: "Ghetto", Column: "Ghetto"},
	{Element: "Camp", Column: "Camp"},
	{Element: "Imm_Date", Column: "Imm_Date"},
	{Element: "Imm_Destination", Column: "Imm_Destination"},
}

// Columns lists every metadata column the renderer reads, in output order.
func Columns() []string {
	out := make([]string, 0, len(DetailFields)+len(IndividualFields))
	for _, group := range [][]Field{DetailFields, IndividualFields} {
		for _, f := range group {
			out = append(out, f.Column)
		}
	}
	return out
}
