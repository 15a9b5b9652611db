package refstore

import (
	"encoding/json"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/i18n"
	"github.com/KirkDiggler/rpg-compendium/internal/tables"
	"github.com/KirkDiggler/rpg-compendium/internal/wealth"
)

// Record is one row of a reference table. The system blob is kept verbatim;
// the fields the tools need are decoded into Attributes.
type Record struct {
	ID            string
	Table         Table
	Name          string
	System        json.RawMessage
	Description   string
	DescriptionFR string
	PublicNotesFR string
	Attributes    Attributes
}

var _ core.Entity = (*Record)(nil)

// GetID implements core.Entity
func (r *Record) GetID() string {
	return r.ID
}

// GetType implements core.Entity
func (r *Record) GetType() string {
	return string(r.Table)
}

// Attributes are the decoded parts of the system blob.
type Attributes struct {
	// Level is zero when the record has no level.
	Level      int
	Rarity     tables.Rarity
	Traits     []string
	Traditions []string
	Price      wealth.Copper
	Category   string
	// Description and PublicNotes are the English texts.
	Description string
	PublicNotes string
	Publication string
}

// Content is the text shown for a record in one language.
type Content struct {
	Description string
	PublicNotes string
}

// Content picks the text for lang. French prefers the translated columns,
// using the public notes as the description for creatures that only have
// notes, and falls back to the English text when neither is translated.
func (r *Record) Content(lang i18n.Language) Content {
	if lang.IsFrench() {
		c := Content{Description: r.DescriptionFR, PublicNotes: r.PublicNotesFR}
		if c.Description == "" && c.PublicNotes != "" {
			c.Description = c.PublicNotes
		}
		if c.Description != "" || c.PublicNotes != "" {
			return c
		}
	}

	c := Content{Description: r.Attributes.Description, PublicNotes: r.Attributes.PublicNotes}
	if c.Description == "" {
		c.Description = r.Description
	}
	if c.Description == "" && c.PublicNotes != "" {
		c.Description = c.PublicNotes
	}
	return c
}

// decodeAttributes reads the system blob leniently: fields with unexpected
// shapes are left at their zero value rather than failing the record.
func decodeAttributes(system []byte) Attributes {
	attrs := Attributes{Rarity: tables.RarityCommon}

	var doc map[string]any
	if len(system) == 0 || json.Unmarshal(system, &doc) != nil {
		return attrs
	}

	if level, ok := number(doc, "level", "value"); ok {
		attrs.Level = int(level)
	} else if level, ok := number(doc, "details", "level", "value"); ok {
		attrs.Level = int(level)
	}

	if rarity, ok := text(doc, "traits", "rarity"); ok {
		attrs.Rarity = tables.ParseRarity(rarity)
	}
	attrs.Traits = stringList(doc, "traits", "value")
	attrs.Traditions = stringList(doc, "traits", "traditions")
	if len(attrs.Traditions) == 0 {
		attrs.Traditions = stringList(doc, "traditions", "value")
	}

	var gp, sp, cp float64
	gp, _ = number(doc, "price", "value", "gp")
	sp, _ = number(doc, "price", "value", "sp")
	cp, _ = number(doc, "price", "value", "cp")
	attrs.Price = wealth.FromCoins(gp, sp, cp)

	attrs.Category, _ = text(doc, "category")
	attrs.Description, _ = text(doc, "description", "value")
	attrs.PublicNotes, _ = text(doc, "details", "publicNotes")
	attrs.Publication, _ = text(doc, "details", "publication", "title")
	if attrs.Publication == "" {
		attrs.Publication, _ = text(doc, "publication", "title")
	}

	return attrs
}

func lookup(doc map[string]any, path ...string) (any, bool) {
	var cur any = doc
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

func number(doc map[string]any, path ...string) (float64, bool) {
	v, ok := lookup(doc, path...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func text(doc map[string]any, path ...string) (string, bool) {
	v, ok := lookup(doc, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func stringList(doc map[string]any, path ...string) []string {
	v, ok := lookup(doc, path...)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// NewRecord builds a record from stored columns, decoding its attributes.
func NewRecord(table Table, id, name string, system []byte, description, descriptionFR, publicNotesFR string) *Record {
	return &Record{
		ID:            id,
		Table:         table,
		Name:          name,
		System:        system,
		Description:   description,
		DescriptionFR: descriptionFR,
		PublicNotesFR: publicNotesFR,
		Attributes:    decodeAttributes(system),
	}
}
