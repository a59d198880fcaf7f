package models

// PracticeCard is one reviewable prompt/answer variant expanded from a stored
// flashcard. It is derived on demand and never persisted; (CardID, CardIndex)
// uniquely identifies the variant within a session.
type PracticeCard struct {
	CardID      int64    `json:"card_id"`
	CardIndex   int      `json:"card_index"`
	DeckID      int64    `json:"deck_id"`
	DeckName    string   `json:"deck_name"`
	CardType    CardType `json:"card_type"`
	Prompt      string   `json:"prompt"`
	Answer      string   `json:"answer"`
	FullContent string   `json:"full_content"`
	Extra       string   `json:"extra,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// DueCard pairs a stored flashcard with the name of the deck it belongs to,
// as loaded for one practice pass.
type DueCard struct {
	Card     Flashcard
	DeckName string
}

// CardFilter narrows card listings.
type CardFilter struct {
	DeckID   int64
	CardType CardType
	Source   string
	Limit    int
	Offset   int
}
