// Copyright (C) 2026 o8 protocol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package provenance

import (
	"strings"

	"github.com/o8-protocol/arch/database/models"
)

type BadgeKey string

const (
	BadgeDeclared    BadgeKey = "DECLARED"
	BadgeDeepStack   BadgeKey = "DEEP_STACK"
	BadgeProcessDoc  BadgeKey = "PROCESS_DOC"
	BadgeMultiplayer BadgeKey = "MULTIPLAYER"
	BadgeFullLineage BadgeKey = "FULL_LINEAGE"
)

const (
	deepStackMinTools       = 5
	processDocMinCharacters = 200
)

// Badge is an independent facet a declaration earns. Badges are never ranked.
type Badge struct {
	Key       BadgeKey
	Label     string
	Color     string
	TextColor string
}

// the registry order is the derivation order
var badgeRegistry = []Badge{
	{Key: BadgeDeclared, Label: "Declared", Color: "#F5F3F0", TextColor: "#0A0A0A"},
	{Key: BadgeDeepStack, Label: "Deep Stack", Color: "#B8A586", TextColor: "#0A0A0A"},
	{Key: BadgeProcessDoc, Label: "Process Doc", Color: "#7B8FA1", TextColor: "#F5F3F0"},
	{Key: BadgeMultiplayer, Label: "Multiplayer", Color: "#A085C2", TextColor: "#F5F3F0"},
	{Key: BadgeFullLineage, Label: "Full Lineage", Color: "#85A88F", TextColor: "#0A0A0A"},
}

var badgeIndex = func() map[BadgeKey]Badge {
	m := make(map[BadgeKey]Badge, len(badgeRegistry))
	for _, b := range badgeRegistry {
		m[b.Key] = b
	}
	return m
}()

func LookupBadge(key BadgeKey) (Badge, bool) {
	b, ok := badgeIndex[key]
	return b, ok
}

// BadgeDefinitions returns a copy of the registry in derivation order.
func BadgeDefinitions() []Badge {
	res := make([]Badge, len(badgeRegistry))
	copy(res, badgeRegistry)
	return res
}

// DeriveBadges computes the badges of a declaration from its fields.
// DECLARED is always awarded.
func DeriveBadges(d models.Declaration) []BadgeKey {
	earned := map[BadgeKey]bool{
		BadgeDeclared:    true,
		BadgeDeepStack:   ToolCount(d) >= deepStackMinTools,
		BadgeProcessDoc:  methodologyLength(d.Methodology) > processDocMinCharacters,
		BadgeMultiplayer: len(d.Contributors) > 0,
		BadgeFullLineage: hasCID(d) && hasHash(d),
	}

	keys := make([]BadgeKey, 0, len(badgeRegistry))
	for _, b := range badgeRegistry {
		if earned[b.Key] {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// ParseBadges reads a stored, comma joined badge string. Whitespace around the
// keys is ignored, unknown keys (e.g. from the legacy single badge vocabulary)
// and duplicates are dropped.
func ParseBadges(s string) []BadgeKey {
	keys := make([]BadgeKey, 0)
	seen := make(map[BadgeKey]struct{})
	for _, raw := range strings.Split(s, ",") {
		key := BadgeKey(strings.TrimSpace(raw))
		if _, ok := badgeIndex[key]; !ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

func JoinBadges(keys []BadgeKey) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = string(k)
	}
	return strings.Join(s, ",")
}

// ResolveBadges returns the cached badges of the declaration if there are any.
// Pass fresh to ignore the cache and derive the badges from the current fields.
func ResolveBadges(d models.Declaration, fresh bool) []BadgeKey {
	if !fresh && strings.TrimSpace(d.Badge) != "" {
		return ParseBadges(d.Badge)
	}
	return DeriveBadges(d)
}

func BadgesOf(keys []BadgeKey) []Badge {
	res := make([]Badge, 0, len(keys))
	for _, k := range keys {
		if b, ok := badgeIndex[k]; ok {
			res = append(res, b)
		}
	}
	return res
}

type GalleryFilter struct {
	Key   string
	Label string
}

var galleryFilters = []GalleryFilter{
	{Key: "all", Label: "All"},
	{Key: string(BadgeDeepStack), Label: "Deep Stack"},
	{Key: string(BadgeMultiplayer), Label: "Multiplayer"},
	{Key: string(BadgeFullLineage), Label: "Full Lineage"},
}

func GalleryFilters() []GalleryFilter {
	res := make([]GalleryFilter, len(galleryFilters))
	copy(res, galleryFilters)
	return res
}

// IsStale reports whether the cached score or badges of a declaration differ
// from the values the current formulas produce.
func IsStale(d models.Declaration) bool {
	if d.TransparencyScore != Score(d) {
		return true
	}
	return JoinBadges(ParseBadges(d.Badge)) != JoinBadges(DeriveBadges(d))
}
