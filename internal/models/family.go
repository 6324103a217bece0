package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FamilyMember is a person in the household.
type FamilyMember struct {
	Name string

	// Points is the member's running score on the leaderboard.
	Points int

	// Avatar is the initial shown in place of a picture.
	Avatar string
}

// NewFamilyMember builds a member whose avatar is the upper-cased first letter
// of the name.
func NewFamilyMember(name string, points int) FamilyMember {
	return FamilyMember{Name: name, Points: points, Avatar: Initial(name)}
}

func Initial(name string) string {
	name = strings.TrimSpace(name)
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// MemberNames returns the names of members in order.
func MemberNames(members []FamilyMember) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names
}
