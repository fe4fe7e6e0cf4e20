package models

type SearchResult struct {
	Query    string        `json:"query"`
	Subjects []Subject     `json:"subjects"`
	Notes    []NoteSummary `json:"notes"`
}

type SubjectStat struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	NoteCount int64  `json:"note_count"`
	WordCount int64  `json:"word_count"`
}

type Statistics struct {
	SubjectCount           int64         `json:"subject_count"`
	NoteCount              int64         `json:"note_count"`
	TotalWords             int64         `json:"total_words"`
	AverageNotesPerSubject float64       `json:"average_notes_per_subject"`
	Subjects               []SubjectStat `json:"subjects"`
}

type Dashboard struct {
	Subjects     []Subject     `json:"subjects"`
	RecentNotes  []NoteSummary `json:"recent_notes"`
	SubjectCount int64         `json:"subject_count"`
	NoteCount    int64         `json:"note_count"`
}
