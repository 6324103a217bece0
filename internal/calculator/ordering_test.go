package calculator

import (
	"testing"

	"github.com/mmynk/homekeeper/internal/models"
)

func TestSortBoughtLast(t *testing.T) {
	items := []models.GroceryItem{
		{ID: "b1", Bought: true},
		{ID: "p1"},
		{ID: "b2", Bought: true},
		{ID: "p2"},
	}

	got := SortBoughtLast(items)

	want := []string{"p1", "p2", "b1", "b2"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
	if items[0].ID != "b1" {
		t.Error("input must not be reordered")
	}
}

func TestSortBoughtLast_Empty(t *testing.T) {
	if got := SortBoughtLast(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestLeaderboard(t *testing.T) {
	board := Leaderboard([]models.FamilyMember{
		{Name: "Tom", Points: 45},
		{Name: "Dad", Points: 95},
		{Name: "Anna", Points: 45},
	})

	want := []string{"Dad", "Anna", "Tom"}
	for i, name := range want {
		if board[i].Name != name {
			t.Errorf("rank %d = %s, want %s", i+1, board[i].Name, name)
		}
	}
}
