// Package kanban is the pipeline board view-model: column membership derived
// from company status, optimistic drag handling and stable card ordering.
//
// A Board is owned by one client session and is not safe for concurrent use.
package kanban

import (
	"context"

	"crm-backend/internal/database/models"

	"github.com/google/uuid"
)

// Column describes one board column. Its ID is the status it represents.
type Column struct {
	ID    models.CompanyStatus `json:"id"`
	Name  string               `json:"name"`
	Color string               `json:"color"`
}

// Columns are the board columns in display order
var Columns = []Column{
	{ID: models.CompanyStatusLead, Name: "Lead", Color: "#848484"},
	{ID: models.CompanyStatusNegotiating, Name: "Negotiating", Color: "#f59e0b"},
	{ID: models.CompanyStatusWon, Name: "Won", Color: "#10b981"},
	{ID: models.CompanyStatusLost, Name: "Lost", Color: "#ef4444"},
}

// Card is a company placed on the board
type Card struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	PotentialValue int64                `json:"potential_value"`
	Column         models.CompanyStatus `json:"column"`
}

// ColumnView is a column with its cards, as rendered
type ColumnView struct {
	Column
	Count int    `json:"count"`
	Cards []Card `json:"cards"`
}

// PersistFunc stores a company's new status
type PersistFunc func(ctx context.Context, companyID uuid.UUID, status models.CompanyStatus) error

// Board holds cards in their local order
type Board struct {
	cards []Card
	// origin remembers each dragged card's column from before the drag
	origin map[uuid.UUID]models.CompanyStatus
}

// NewBoard places companies on a board in the given order
func NewBoard(companies []models.Company) *Board {
	b := &Board{
		cards:  make([]Card, 0, len(companies)),
		origin: make(map[uuid.UUID]models.CompanyStatus),
	}
	for _, c := range companies {
		b.cards = append(b.cards, cardFor(c))
	}
	return b
}

func cardFor(c models.Company) Card {
	return Card{ID: c.ID, Name: c.Name, PotentialValue: c.PotentialValue, Column: c.Status}
}

// Cards returns a copy of every card in local order
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Snapshot groups cards into columns, keeping local order inside each column
func (b *Board) Snapshot() []ColumnView {
	views := make([]ColumnView, len(Columns))
	index := make(map[models.CompanyStatus]int, len(Columns))
	for i, col := range Columns {
		views[i] = ColumnView{Column: col, Cards: []Card{}}
		index[col.ID] = i
	}
	for _, card := range b.cards {
		i, ok := index[card.Column]
		if !ok {
			continue
		}
		views[i].Cards = append(views[i].Cards, card)
		views[i].Count++
	}
	return views
}

// Add puts a newly created company at the top of the board
func (b *Board) Add(c models.Company) {
	b.cards = append([]Card{cardFor(c)}, b.cards...)
}

// Remove drops a deleted company. It reports whether the card was present.
func (b *Board) Remove(id uuid.UUID) bool {
	i := b.indexOf(id.String())
	if i < 0 {
		return false
	}
	b.cards = append(b.cards[:i], b.cards[i+1:]...)
	delete(b.origin, id)
	return true
}

// SetStatus applies a status confirmed elsewhere, such as the detail panel
func (b *Board) SetStatus(id uuid.UUID, status models.CompanyStatus) bool {
	i := b.indexOf(id.String())
	if i < 0 || !status.IsValid() {
		return false
	}
	b.cards[i].Column = status
	return true
}

// Contains reports whether a card with id is on the board
func (b *Board) Contains(id string) bool {
	return b.indexOf(id) >= 0
}

// IsTarget reports whether overID names a card or a column
func (b *Board) IsTarget(overID string) bool {
	_, ok := b.columnOf(overID)
	return ok
}

func (b *Board) indexOf(id string) int {
	for i, card := range b.cards {
		if card.ID.String() == id {
			return i
		}
	}
	return -1
}

// columnOf resolves a drop target: a card id yields that card's column,
// otherwise the id must name a column.
func (b *Board) columnOf(overID string) (models.CompanyStatus, bool) {
	if i := b.indexOf(overID); i >= 0 {
		return b.cards[i].Column, true
	}
	status := models.CompanyStatus(overID)
	return status, status.IsValid()
}

// DragOver moves the active card into the hovered column locally. Nothing is
// persisted. It reports whether the card changed column.
func (b *Board) DragOver(activeID, overID string) bool {
	if overID == "" {
		return false
	}
	i := b.indexOf(activeID)
	if i < 0 {
		return false
	}
	target, ok := b.columnOf(overID)
	if !ok || b.cards[i].Column == target {
		return false
	}
	if _, dragging := b.origin[b.cards[i].ID]; !dragging {
		b.origin[b.cards[i].ID] = b.cards[i].Column
	}
	b.cards[i].Column = target
	return true
}

// Drop persists the active card's current column as its status. When persist
// fails the card returns to the column it had before the drag and the error is
// returned. On success a drop onto another card reorders the local list.
func (b *Board) Drop(ctx context.Context, activeID, overID string, persist PersistFunc) error {
	if overID == "" {
		b.cancel(activeID)
		return nil
	}
	i := b.indexOf(activeID)
	if i < 0 {
		return nil
	}
	card := b.cards[i]
	origin, dragging := b.origin[card.ID]
	delete(b.origin, card.ID)

	if err := persist(ctx, card.ID, card.Column); err != nil {
		if dragging {
			b.cards[i].Column = origin
		}
		return err
	}

	if activeID != overID {
		if j := b.indexOf(overID); j >= 0 {
			b.cards = Move(b.cards, i, j)
		}
	}
	return nil
}

// cancel restores a card whose drag ended outside any target
func (b *Board) cancel(activeID string) {
	i := b.indexOf(activeID)
	if i < 0 {
		return
	}
	if origin, ok := b.origin[b.cards[i].ID]; ok {
		b.cards[i].Column = origin
		delete(b.origin, b.cards[i].ID)
	}
}

// Move returns items with the element at from relocated to to. Other elements
// keep their relative order. Out-of-range indexes leave items unchanged.
func Move[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items
	}
	out := make([]T, 0, len(items))
	moved := items[from]
	for i, item := range items {
		if i == from {
			continue
		}
		out = append(out, item)
	}
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}
