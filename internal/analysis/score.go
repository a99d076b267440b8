package analysis

import (
	"sort"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/google/uuid"
)

// HeroRef identifies one endpoint of a relation edge.
type HeroRef struct {
	ID   uuid.UUID
	Name string
}

// HeroData is everything the scorer needs to know about one roster
// hero: its identity, role, and recorded relation edges.
type HeroData struct {
	ID          uuid.UUID
	Name        string
	Role        domain.HeroRole
	Synergies   []HeroRef // heroes this hero plays well with
	Counters    []HeroRef // heroes this hero beats
	CounteredBy []HeroRef // heroes that beat this hero
}

// SynergyPair is a detected in-roster synergy edge.
type SynergyPair struct {
	Hero string `json:"hero"`
	With string `json:"with"`
}

// Vulnerability is a roster hero threatened by a hero no teammate
// answers.
type Vulnerability struct {
	Hero   string `json:"hero"`
	Threat string `json:"threat"`
}

// Result is the cached analysis payload stored alongside a team.
type Result struct {
	Score           int             `json:"score"`
	RoleBalance     map[string]int  `json:"roleBalance"`
	SynergyPairs    []SynergyPair   `json:"synergyPairs"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Tags            []string        `json:"tags"`
}

const (
	idealPerRole   = 2
	roleWeight     = 8
	roleCeiling    = 40
	synergyWeight  = 8
	synergyCeiling = 40
	threatWeight   = 4
	threatBudget   = 20
)

// Score rates how well a finalized roster plays together. It is a pure
// function of the heroes' identities and recorded relations: the input
// order never affects the output (heroes are sorted by id up front),
// and the result is always in [0,100].
//
// The breakdown: up to 40 points for role balance against the ideal
// 2/2/2 split, up to 40 for in-roster synergy pairs, and up to 20 for
// counter coverage, losing points for each threat to a roster hero
// that no teammate counters. A hero with no recorded relations
// contributes through role balance alone.
func Score(heroes []HeroData) Result {
	sorted := make([]HeroData, len(heroes))
	copy(sorted, heroes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	inRoster := make(map[uuid.UUID]bool, len(sorted))
	for _, h := range sorted {
		inRoster[h.ID] = true
	}

	// Role balance.
	roleCounts := map[string]int{
		string(domain.RoleVanguard):   0,
		string(domain.RoleDuelist):    0,
		string(domain.RoleStrategist): 0,
	}
	for _, h := range sorted {
		roleCounts[string(h.Role)]++
	}
	deviation := 0
	for _, count := range roleCounts {
		deviation += abs(count - idealPerRole)
	}
	roleScore := max(0, roleCeiling-roleWeight*deviation)

	// In-roster synergy edges.
	pairs := []SynergyPair{}
	for _, h := range sorted {
		for _, other := range sortedRefs(h.Synergies) {
			if inRoster[other.ID] && other.ID != h.ID {
				pairs = append(pairs, SynergyPair{Hero: h.Name, With: other.Name})
			}
		}
	}
	synergyScore := min(synergyCeiling, synergyWeight*len(pairs))

	// Counter coverage: a threat is a hero that beats one of ours;
	// it is covered if any teammate beats the threat back.
	covered := make(map[uuid.UUID]bool)
	for _, h := range sorted {
		for _, beaten := range h.Counters {
			covered[beaten.ID] = true
		}
	}
	vulns := []Vulnerability{}
	seen := make(map[[2]uuid.UUID]bool)
	for _, h := range sorted {
		for _, threat := range sortedRefs(h.CounteredBy) {
			if covered[threat.ID] || seen[[2]uuid.UUID{h.ID, threat.ID}] {
				continue
			}
			seen[[2]uuid.UUID{h.ID, threat.ID}] = true
			vulns = append(vulns, Vulnerability{Hero: h.Name, Threat: threat.Name})
		}
	}
	counterScore := max(0, threatBudget-threatWeight*len(vulns))

	return Result{
		Score:           clamp(roleScore+synergyScore+counterScore, 0, 100),
		RoleBalance:     roleCounts,
		SynergyPairs:    pairs,
		Vulnerabilities: vulns,
		Tags:            advisoryTags(roleCounts, len(pairs), len(vulns)),
	}
}

func advisoryTags(roleCounts map[string]int, pairs, vulns int) []string {
	tags := []string{}
	if roleCounts[string(domain.RoleVanguard)] == 0 {
		tags = append(tags, "no-vanguard")
	}
	if roleCounts[string(domain.RoleStrategist)] == 0 {
		tags = append(tags, "no-strategist")
	}
	if roleCounts[string(domain.RoleVanguard)] == idealPerRole &&
		roleCounts[string(domain.RoleDuelist)] == idealPerRole &&
		roleCounts[string(domain.RoleStrategist)] == idealPerRole {
		tags = append(tags, "balanced-roles")
	}
	if pairs >= 4 {
		tags = append(tags, "synergy-rich")
	}
	if vulns >= 3 {
		tags = append(tags, "exposed-to-counters")
	}
	return tags
}

func sortedRefs(refs []HeroRef) []HeroRef {
	out := make([]HeroRef, len(refs))
	copy(out, refs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
