package domain

import "time"

type ProgressEntry struct {
	Correct    bool      `json:"correct"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// Progress maps game ids of one folder to the latest answer given.
type Progress struct {
	FolderID string                   `json:"folderId"`
	Entries  map[string]ProgressEntry `json:"entries"`
}

func NewProgress(folderID string) Progress {
	return Progress{
		FolderID: folderID,
		Entries:  make(map[string]ProgressEntry),
	}
}

func (p Progress) Answered() int {
	return len(p.Entries)
}

func (p Progress) Correct() int {
	n := 0
	for _, e := range p.Entries {
		if e.Correct {
			n++
		}
	}
	return n
}

// Percent is the share of the folder's games that have been answered, 0..100.
func (p Progress) Percent(totalGames int) int {
	return percent(p.Answered(), totalGames)
}

func (p Progress) CorrectPercent(totalGames int) int {
	return percent(p.Correct(), totalGames)
}

func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	if n > total {
		n = total
	}
	return n * 100 / total
}
