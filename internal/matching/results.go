package matching

import (
	"encoding/json"
	"os"
)

// Results wraps a ranked result list for the post-scoring steps.
type Results struct {
	Items []MatchResult
}

// Categorized holds results split by category, each in ranked order.
type Categorized struct {
	Safety []MatchResult `json:"safety"`
	Target []MatchResult `json:"target"`
	Reach  []MatchResult `json:"reach"`
}

// Summary counts results per category.
type Summary struct {
	Total  int `json:"total"`
	Safety int `json:"safety"`
	Target int `json:"target"`
	Reach  int `json:"reach"`
}

func (r *Results) Len() int {
	return len(r.Items)
}

func (r *Results) FindByID(id string) *MatchResult {
	for i := range r.Items {
		if r.Items[i].ID == id {
			return &r.Items[i]
		}
	}
	return nil
}

// Keep retains the items accepted by keep, preserving order, and returns the
// ids of the dropped ones.
func (r *Results) Keep(keep func(MatchResult) bool) []string {
	var dropped []string
	kept := r.Items[:0:0]
	for _, item := range r.Items {
		if keep(item) {
			kept = append(kept, item)
			continue
		}
		dropped = append(dropped, item.ID)
	}
	r.Items = kept
	return dropped
}

// Partition splits the results by category in a single pass.
func (r *Results) Partition() Categorized {
	return Partition(r.Items)
}

func Partition(results []MatchResult) Categorized {
	var c Categorized
	for _, res := range results {
		switch res.Category {
		case Safety:
			c.Safety = append(c.Safety, res)
		case Target:
			c.Target = append(c.Target, res)
		default:
			c.Reach = append(c.Reach, res)
		}
	}
	return c
}

// ByCategory returns the partition for the given category.
func (c Categorized) ByCategory(cat Category) []MatchResult {
	switch cat {
	case Safety:
		return c.Safety
	case Target:
		return c.Target
	default:
		return c.Reach
	}
}

func (c Categorized) Summary() Summary {
	return Summary{
		Total:  len(c.Safety) + len(c.Target) + len(c.Reach),
		Safety: len(c.Safety),
		Target: len(c.Target),
		Reach:  len(c.Reach),
	}
}

// DumpToTmpFile writes the results as indented JSON into a new temp file.
func (r *Results) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "university_matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
