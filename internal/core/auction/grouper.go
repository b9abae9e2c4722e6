package auction

import (
	"adspend/internal/core/domain"
)

// GroupKey identifies a competition group. Matching is exact and case
// sensitive.
type GroupKey struct {
	Placement domain.Placement
	Niche     string
}

func (k GroupKey) String() string {
	return string(k.Placement) + ":" + k.Niche
}

// KeyOf returns the competition group of an ad.
func KeyOf(ad domain.Ad) GroupKey {
	return GroupKey{Placement: ad.Placement, Niche: ad.Niche()}
}

// Competition maps every group to the number of eligible ads in it. It is
// built once per run from the whole population and only read afterwards.
type Competition struct {
	members map[GroupKey]int
}

// Group counts eligible ads per group.
func Group(ads []domain.Ad) Competition {
	members := make(map[GroupKey]int)
	for _, ad := range ads {
		if !ad.Eligible() {
			continue
		}
		members[KeyOf(ad)]++
	}
	return Competition{members: members}
}

// Members returns the number of eligible ads in a group.
func (c Competition) Members(key GroupKey) int {
	return c.members[key]
}

// Groups returns the number of non-empty groups.
func (c Competition) Groups() int {
	return len(c.members)
}

// CompetitorsFor approximates how many other ads compete with ad: the size
// of its group minus one, floored at zero. The ad itself is not looked up,
// so an ineligible ad in a group of n eligible ads also sees n-1.
func (c Competition) CompetitorsFor(ad domain.Ad) int {
	n := c.members[KeyOf(ad)] - 1
	if n < 0 {
		return 0
	}
	return n
}
