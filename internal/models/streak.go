package models

// GlobalStreakNodeID is the pseudo-node that aggregates activity across
// all nodes for a given day
const GlobalStreakNodeID = 0

// StreakEntry is the activity count for one (date, node) pair.
// Date is stored as YYYY-MM-DD.
type StreakEntry struct {
	Date   string `json:"date"`
	NodeID int    `json:"nodeId"`
	Count  int    `json:"count"`
}

// StreakResponse is the finite snapshot returned by a streak query,
// most recent dates first
type StreakResponse struct {
	NodeID  int           `json:"nodeId"`
	Entries []StreakEntry `json:"entries"`
}
