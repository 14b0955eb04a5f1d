// Package stats derives read-only summary figures from a family snapshot
// for the stats panel and the exported bundle.
package stats

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/nuwandm/mahagedara/pkg/model"
	"github.com/nuwandm/mahagedara/pkg/query"
)

// TagCount associates a tag with the number of people carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// Summary holds the derived family figures.
type Summary struct {
	TotalPeople    int
	TotalSpouses   int
	Generations    int // deepest level + 1 (root couple counts as one)
	PerGeneration  []int
	Male           int
	Female         int
	OtherGender    int
	Living         int
	Deceased       int
	LifespanMean   float64 // years; 0 when no complete lifespans
	LifespanStdDev float64
	LifespanKnown  int
	EarliestBirth  int // 0 when no birth years recorded
	LatestBirth    int
	TagCounts      []TagCount // sorted by count desc, then tag asc
	TotalEvents    int
}

// Compute walks the snapshot once and derives the summary. Spouses count
// toward gender, living/deceased, lifespan, and tag figures, but not toward
// TotalPeople or the per-generation breakdown (they are not traversal
// nodes).
func Compute(fd *model.FamilyData) Summary {
	var s Summary
	var lifespans []float64
	tagCounts := make(map[string]int)
	tagCasing := make(map[string]string)

	countPerson := func(p *model.Person) {
		switch p.Gender {
		case model.GenderMale:
			s.Male++
		case model.GenderFemale:
			s.Female++
		default:
			s.OtherGender++
		}
		if p.IsDeceased() {
			s.Deceased++
		} else {
			s.Living++
		}
		if span, ok := p.Lifespan(); ok {
			lifespans = append(lifespans, float64(span))
		}
		if p.BirthYear != nil {
			y := *p.BirthYear
			if s.EarliestBirth == 0 || y < s.EarliestBirth {
				s.EarliestBirth = y
			}
			if y > s.LatestBirth {
				s.LatestBirth = y
			}
		}
		for _, tag := range p.Tags {
			key := normTag(tag)
			tagCounts[key]++
			if _, ok := tagCasing[key]; !ok {
				tagCasing[key] = tag
			}
		}
	}

	query.Walk(fd, func(p *model.Person, generation int) {
		s.TotalPeople++
		for len(s.PerGeneration) <= generation {
			s.PerGeneration = append(s.PerGeneration, 0)
		}
		s.PerGeneration[generation]++
		countPerson(p)

		if p.Spouse != nil {
			s.TotalSpouses++
			sp := p.Spouse.AsPerson()
			countPerson(&sp)
		}
	})

	s.Generations = len(s.PerGeneration)
	s.TotalEvents = len(fd.Events)

	s.LifespanKnown = len(lifespans)
	if len(lifespans) > 0 {
		s.LifespanMean = stat.Mean(lifespans, nil)
		if len(lifespans) > 1 {
			s.LifespanStdDev = stat.StdDev(lifespans, nil)
		}
	}

	s.TagCounts = make([]TagCount, 0, len(tagCounts))
	for key, count := range tagCounts {
		s.TagCounts = append(s.TagCounts, TagCount{Tag: tagCasing[key], Count: count})
	}
	sort.Slice(s.TagCounts, func(i, j int) bool {
		if s.TagCounts[i].Count != s.TagCounts[j].Count {
			return s.TagCounts[i].Count > s.TagCounts[j].Count
		}
		return s.TagCounts[i].Tag < s.TagCounts[j].Tag
	})

	return s
}

func normTag(s string) string {
	return strings.ToLower(s)
}
