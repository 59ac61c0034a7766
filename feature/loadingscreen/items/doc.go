// Package items extracts loading screen definitions from items_game.txt.
//
// Parsing runs in four stages: the "items" collection is bounded out of the
// document with keyvalues.Section, each line is tokenized and classified, and
// the resulting lines are folded through a Builder, a small state machine that
// tracks brace depth and assembles one reconcile.Item per top level child.
//
// Normalize then turns the localization token stored in an item's name
// ("#DOTA_Item_Axe_Loading_Screen_Style1") into a display name ("Axe") and
// strips the "console/" prefix from its asset path.
package items
