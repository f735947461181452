package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
)

// FAQ is an embedded value type. Items live inside their parent's JSON column
// and have no store access path of their own.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQList []FAQ

func (f FAQList) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	b, err := json.Marshal(f)
	return string(b), err
}

func (f *FAQList) Scan(value interface{}) error {
	if value == nil {
		*f = FAQList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, f)
}

// Append adds a new item with a generated ID and returns it.
func (f *FAQList) Append(question, answer string) FAQ {
	item := FAQ{ID: uuid.NewString(), Question: question, Answer: answer}
	*f = append(*f, item)
	return item
}

// Update patches the item with the given ID. Nil fields are left untouched.
// Returns false when no item matches.
func (f FAQList) Update(id string, question, answer *string) bool {
	for i := range f {
		if f[i].ID != id {
			continue
		}
		if question != nil {
			f[i].Question = *question
		}
		if answer != nil {
			f[i].Answer = *answer
		}
		return true
	}
	return false
}

// Remove drops the item with the given ID. Removing an unknown ID is a no-op.
func (f FAQList) Remove(id string) FAQList {
	out := make(FAQList, 0, len(f))
	for _, item := range f {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
