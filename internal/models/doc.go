// Package models defines the core domain records for Homekeeper.
//
// # Records
//
// The household is described by four record shapes, each held in an ordered
// sequence owned by a view:
//   - Task: a chore inside a house area (category), assigned to family members
//   - GroceryItem: an entry on the shared shopping list
//   - Category: a house area shown on the dashboard
//   - Car: a family vehicle with service and inspection dates
//
// FamilyMember is configuration, not a record: members are listed on the
// dashboard leaderboard and offered as assignees.
//
// # Design Principles
//
// 1. **Immutable versions**: records are values; views never mutate a record in
// place, they build a new sequence through the reducers in package records
// 2. **Names, not accounts**: assignees and owners are display names
// 3. **Closed enumerations**: priorities, grocery categories and icons are typed
// strings with a fixed set of values
// 4. **No presentation**: colors and icon glyphs belong to the presentation layer
package models
