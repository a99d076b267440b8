package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alexdoyle/rivals-team-builder/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	displayName string
	password    string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		displayName: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
	}
}

// WithDisplayName sets the display name
func (b *UserBuilder) WithDisplayName(name string) *UserBuilder {
	b.displayName = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		DisplayName:  b.displayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		AvatarURL   string `json:"avatarUrl"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"displayName": b.displayName,
		"password":    b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:          userID,
		DisplayName: authResp.User.DisplayName,
	}

	return user, authResp.AccessToken
}

// HeroBuilder creates test heroes
type HeroBuilder struct {
	name       string
	role       domain.HeroRole
	difficulty int
	tags       []string
}

// NewHeroBuilder creates a new HeroBuilder with default values
func NewHeroBuilder() *HeroBuilder {
	return &HeroBuilder{
		name:       fmt.Sprintf("Hero %s", uuid.New().String()[:8]),
		role:       domain.RoleDuelist,
		difficulty: 2,
		tags:       []string{"test"},
	}
}

// WithName sets the hero name
func (b *HeroBuilder) WithName(name string) *HeroBuilder {
	b.name = name
	return b
}

// WithRole sets the hero role
func (b *HeroBuilder) WithRole(role domain.HeroRole) *HeroBuilder {
	b.role = role
	return b
}

// WithDifficulty sets the hero difficulty
func (b *HeroBuilder) WithDifficulty(difficulty int) *HeroBuilder {
	b.difficulty = difficulty
	return b
}

// WithTags sets the playstyle tags
func (b *HeroBuilder) WithTags(tags []string) *HeroBuilder {
	b.tags = tags
	return b
}

// Build creates the hero in the database
func (b *HeroBuilder) Build(t *testing.T, db *gorm.DB) *domain.Hero {
	t.Helper()

	tagsJSON, _ := json.Marshal(b.tags)
	hero := &domain.Hero{
		ID:          uuid.New(),
		Name:        b.name,
		Role:        b.role,
		Description: fmt.Sprintf("%s test description", b.name),
		Difficulty:  b.difficulty,
		Tags:        datatypes.JSON(tagsJSON),
	}

	if err := db.Create(hero).Error; err != nil {
		t.Fatalf("failed to create hero: %v", err)
	}

	return hero
}

// AddSynergy records that hero plays well with other
func AddSynergy(t *testing.T, db *gorm.DB, hero, other *domain.Hero) {
	t.Helper()

	edge := &domain.HeroSynergy{HeroID: hero.ID, OtherID: other.ID}
	if err := db.Create(edge).Error; err != nil {
		t.Fatalf("failed to create synergy edge: %v", err)
	}
}

// AddCounter records that hero beats other
func AddCounter(t *testing.T, db *gorm.DB, hero, other *domain.Hero) {
	t.Helper()

	edge := &domain.HeroCounter{HeroID: hero.ID, OtherID: other.ID}
	if err := db.Create(edge).Error; err != nil {
		t.Fatalf("failed to create counter edge: %v", err)
	}
}

// SeedBalancedRoster creates a 2/2/2 roster of six heroes
func SeedBalancedRoster(t *testing.T, db *gorm.DB) []*domain.Hero {
	t.Helper()

	roles := []domain.HeroRole{
		domain.RoleVanguard, domain.RoleVanguard,
		domain.RoleDuelist, domain.RoleDuelist,
		domain.RoleStrategist, domain.RoleStrategist,
	}

	heroes := make([]*domain.Hero, len(roles))
	for i, role := range roles {
		heroes[i] = NewHeroBuilder().
			WithName(fmt.Sprintf("%s %d %s", role, i+1, uuid.New().String()[:8])).
			WithRole(role).
			Build(t, db)
	}
	return heroes
}

// TeamBuilder creates teams straight in the database, bypassing the
// service layer. Scores and analysis stay zero-valued unless set.
type TeamBuilder struct {
	owner  *domain.User
	name   string
	heroes []*domain.Hero
	score  int
}

// NewTeamBuilder creates a new TeamBuilder with default values
func NewTeamBuilder() *TeamBuilder {
	return &TeamBuilder{
		name: fmt.Sprintf("Test Team %s", uuid.New().String()[:8]),
	}
}

// WithOwner sets the team owner
func (b *TeamBuilder) WithOwner(user *domain.User) *TeamBuilder {
	b.owner = user
	return b
}

// WithName sets the team name
func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.name = name
	return b
}

// WithHeroes sets the roster, filling positions in order
func (b *TeamBuilder) WithHeroes(heroes []*domain.Hero) *TeamBuilder {
	b.heroes = heroes
	return b
}

// WithScore sets the composition score
func (b *TeamBuilder) WithScore(score int) *TeamBuilder {
	b.score = score
	return b
}

// Build creates the team and its members in the database
func (b *TeamBuilder) Build(t *testing.T, db *gorm.DB) *domain.Team {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}
	if b.heroes == nil {
		b.heroes = SeedBalancedRoster(t, db)
	}

	team := &domain.Team{
		ID:               uuid.New(),
		OwnerID:          b.owner.ID,
		Name:             b.name,
		Slug:             fmt.Sprintf("test-team-%s", uuid.New().String()[:8]),
		CompositionScore: b.score,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	for i, hero := range b.heroes {
		member := &domain.TeamMember{
			ID:       uuid.New(),
			TeamID:   team.ID,
			HeroID:   hero.ID,
			Position: i + 1,
		}
		if err := db.Create(member).Error; err != nil {
			t.Fatalf("failed to create team member: %v", err)
		}
	}

	return team
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
