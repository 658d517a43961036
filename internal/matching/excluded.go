package matching

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"
)

// ExcludedUniversities is the list of universities the student dismissed.
// It is kept in a json file between runs.
type ExcludedUniversities struct {
	Items []*ExcludedUniversity `json:"items"`
}

type ExcludedUniversity struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ExcludedAt time.Time `json:"excluded_at"`
}

// ToExcluded converts the current results into exclusion entries.
func (r *Results) ToExcluded() *ExcludedUniversities {
	excluded := &ExcludedUniversities{}
	now := time.Now().UTC()
	for _, item := range r.Items {
		excluded.Items = append(excluded.Items, &ExcludedUniversity{
			ID:         item.ID,
			Name:       item.Name,
			ExcludedAt: now,
		})
	}
	return excluded
}

// GetExcludedFromFile reads the exclusion file. A missing or empty file is an empty list.
func GetExcludedFromFile(path string) (*ExcludedUniversities, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedUniversities{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedUniversities{}, nil
	}

	var excluded ExcludedUniversities
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedUniversities) Append(s *ExcludedUniversities) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedUniversities) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, u := range e.Items {
		ids = append(ids, u.ID)
	}
	return ids
}

func (e *ExcludedUniversities) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
