package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
)

// In-memory repository doubles. Each mock keeps its rows in a map and
// mirrors only the behavior the services depend on, in particular the
// public visibility predicate and gorm.ErrRecordNotFound for misses.

// ── game repo ──

type mockGameRepo struct {
	games map[string]*model.Game
}

func newMockGameRepo() *mockGameRepo {
	return &mockGameRepo{games: make(map[string]*model.Game)}
}

func (m *mockGameRepo) Create(_ context.Context, game *model.Game) error {
	if game.GameID == "" {
		game.GameID = uuid.NewString()
	}
	m.games[game.GameID] = game
	return nil
}

func (m *mockGameRepo) GetVisibleByID(_ context.Context, id string) (*model.Game, error) {
	g, ok := m.games[id]
	if !ok || !g.IsPubliclyVisible() {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (m *mockGameRepo) ListVisible(_ context.Context, filter repository.GameFilter, offset, limit int) ([]model.Game, error) {
	matched := m.visibleMatching(filter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (m *mockGameRepo) CountVisible(_ context.Context, filter repository.GameFilter) (int64, error) {
	return int64(len(m.visibleMatching(filter))), nil
}

func (m *mockGameRepo) ListVisibleByIDs(_ context.Context, ids []string) ([]model.Game, error) {
	var result []model.Game
	for _, id := range ids {
		if g, ok := m.games[id]; ok && g.IsPubliclyVisible() {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (m *mockGameRepo) ListAllVisible(_ context.Context) ([]model.Game, error) {
	return m.visibleMatching(repository.GameFilter{}), nil
}

func (m *mockGameRepo) visibleMatching(filter repository.GameFilter) []model.Game {
	var result []model.Game
	for _, g := range m.games {
		if !g.IsPubliclyVisible() {
			continue
		}
		if !gameMatches(g, filter) {
			continue
		}
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].GameID < result[j].GameID
	})
	return result
}

func gameMatches(g *model.Game, f repository.GameFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(g.Name), q) &&
			!strings.Contains(strings.ToLower(g.Description), q) &&
			!strings.Contains(strings.ToLower(g.Variants), q) {
			return false
		}
	}
	if f.PlayerCount != "" && g.PlayerCount != f.PlayerCount {
		return false
	}
	if f.Duration != "" && g.Duration != f.Duration {
		return false
	}
	if len(f.FocusNames) > 0 {
		names := make(map[string]bool)
		for _, t := range g.Focuses {
			names[t.Name] = true
		}
		if !anyName(names, f.FocusNames) {
			return false
		}
	}
	if len(f.MaterialNames) > 0 {
		names := make(map[string]bool)
		for _, t := range g.Materials {
			names[t.Name] = true
		}
		if !anyName(names, f.MaterialNames) {
			return false
		}
	}
	if len(f.LabelNames) > 0 {
		names := make(map[string]bool)
		for _, t := range g.Labels {
			names[t.Name] = true
		}
		if !anyName(names, f.LabelNames) {
			return false
		}
	}
	if len(f.LanguageCodes) > 0 {
		codes := make(map[string]bool)
		for _, l := range g.Languages {
			codes[l.Code] = true
		}
		if !anyName(codes, f.LanguageCodes) {
			return false
		}
	}
	return true
}

func anyName(have map[string]bool, want []string) bool {
	for _, w := range want {
		if have[w] {
			return true
		}
	}
	return false
}

// ── tag repo ──

type mockTagRepo struct {
	focuses   map[string]*model.Focus
	materials map[string]*model.Material
	labels    map[string]*model.Label
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{
		focuses:   make(map[string]*model.Focus),
		materials: make(map[string]*model.Material),
		labels:    make(map[string]*model.Label),
	}
}

func (m *mockTagRepo) CreateFocus(_ context.Context, f *model.Focus) error {
	if f.FocusID == "" {
		f.FocusID = uuid.NewString()
	}
	m.focuses[f.FocusID] = f
	return nil
}

func (m *mockTagRepo) ListFocuses(_ context.Context) ([]model.Focus, error) {
	var result []model.Focus
	for _, f := range m.focuses {
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTagRepo) GetFocusesByIDs(_ context.Context, ids []string) ([]model.Focus, error) {
	var result []model.Focus
	for _, id := range ids {
		if f, ok := m.focuses[id]; ok {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockTagRepo) CreateMaterial(_ context.Context, mat *model.Material) error {
	if mat.MaterialID == "" {
		mat.MaterialID = uuid.NewString()
	}
	m.materials[mat.MaterialID] = mat
	return nil
}

func (m *mockTagRepo) ListMaterials(_ context.Context) ([]model.Material, error) {
	var result []model.Material
	for _, mat := range m.materials {
		result = append(result, *mat)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTagRepo) GetMaterialsByIDs(_ context.Context, ids []string) ([]model.Material, error) {
	var result []model.Material
	for _, id := range ids {
		if mat, ok := m.materials[id]; ok {
			result = append(result, *mat)
		}
	}
	return result, nil
}

func (m *mockTagRepo) CreateLabel(_ context.Context, l *model.Label) error {
	if l.LabelID == "" {
		l.LabelID = uuid.NewString()
	}
	m.labels[l.LabelID] = l
	return nil
}

func (m *mockTagRepo) ListLabels(_ context.Context) ([]model.Label, error) {
	var result []model.Label
	for _, l := range m.labels {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTagRepo) GetLabelsByIDs(_ context.Context, ids []string) ([]model.Label, error) {
	var result []model.Label
	for _, id := range ids {
		if l, ok := m.labels[id]; ok {
			result = append(result, *l)
		}
	}
	return result, nil
}

// ── language repo ──

type mockLanguageRepo struct {
	languages map[string]*model.Language
}

func newMockLanguageRepo() *mockLanguageRepo {
	return &mockLanguageRepo{languages: make(map[string]*model.Language)}
}

func (m *mockLanguageRepo) Create(_ context.Context, l *model.Language) error {
	if l.LanguageID == "" {
		l.LanguageID = uuid.NewString()
	}
	m.languages[l.LanguageID] = l
	return nil
}

func (m *mockLanguageRepo) List(_ context.Context) ([]model.Language, error) {
	var result []model.Language
	for _, l := range m.languages {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (m *mockLanguageRepo) GetByCode(_ context.Context, code string) (*model.Language, error) {
	for _, l := range m.languages {
		if strings.EqualFold(l.Code, code) {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── session repo ──

type mockSessionRepo struct {
	sessions map[string]*model.TrainingSession
	entries  map[string]*model.SessionEntry
	games    *mockGameRepo
}

func newMockSessionRepo(games *mockGameRepo) *mockSessionRepo {
	return &mockSessionRepo{
		sessions: make(map[string]*model.TrainingSession),
		entries:  make(map[string]*model.SessionEntry),
		games:    games,
	}
}

func (m *mockSessionRepo) CreateWithEntries(_ context.Context, session *model.TrainingSession, entries []model.SessionEntry) error {
	if session.SessionID == "" {
		session.SessionID = uuid.NewString()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.SessionID] = session
	for i := range entries {
		e := entries[i]
		e.EntryID = uuid.NewString()
		e.SessionID = session.SessionID
		m.entries[e.EntryID] = &e
	}
	return nil
}

func (m *mockSessionRepo) GetByIDForOwner(_ context.Context, id, ownerID string) (*model.TrainingSession, error) {
	s, ok := m.sessions[id]
	if !ok || s.CreatedBy != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	copied.Entries = m.entriesFor(id)
	return &copied, nil
}

func (m *mockSessionRepo) ListByOwner(_ context.Context, ownerID string) ([]model.TrainingSession, error) {
	var result []model.TrainingSession
	for _, s := range m.sessions {
		if s.CreatedBy != ownerID {
			continue
		}
		copied := *s
		copied.Entries = m.entriesFor(s.SessionID)
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockSessionRepo) Update(_ context.Context, session *model.TrainingSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id, ownerID string) error {
	if s, ok := m.sessions[id]; ok && s.CreatedBy == ownerID {
		delete(m.sessions, id)
		for eid, e := range m.entries {
			if e.SessionID == id {
				delete(m.entries, eid)
			}
		}
	}
	return nil
}

func (m *mockSessionRepo) AddEntry(_ context.Context, entry *model.SessionEntry) error {
	if m.positionTaken(entry) {
		return gorm.ErrDuplicatedKey
	}
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *mockSessionRepo) GetEntry(_ context.Context, entryID, sessionID string) (*model.SessionEntry, error) {
	e, ok := m.entries[entryID]
	if !ok || e.SessionID != sessionID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *mockSessionRepo) UpdateEntry(_ context.Context, entry *model.SessionEntry) error {
	if m.positionTaken(entry) {
		return gorm.ErrDuplicatedKey
	}
	m.entries[entry.EntryID] = entry
	return nil
}

// positionTaken mirrors the UNIQUE(session_id, game_id, position) index.
func (m *mockSessionRepo) positionTaken(entry *model.SessionEntry) bool {
	for _, e := range m.entries {
		if e.EntryID != entry.EntryID &&
			e.SessionID == entry.SessionID &&
			e.GameID == entry.GameID &&
			e.Position == entry.Position {
			return true
		}
	}
	return false
}

func (m *mockSessionRepo) DeleteEntry(_ context.Context, entryID, sessionID string) error {
	if e, ok := m.entries[entryID]; ok && e.SessionID == sessionID {
		delete(m.entries, entryID)
	}
	return nil
}

func (m *mockSessionRepo) MaxPosition(_ context.Context, sessionID string) (int, error) {
	max := 0
	for _, e := range m.entries {
		if e.SessionID == sessionID && e.Position > max {
			max = e.Position
		}
	}
	return max, nil
}

func (m *mockSessionRepo) entriesFor(sessionID string) []model.SessionEntry {
	var result []model.SessionEntry
	for _, e := range m.entries {
		if e.SessionID != sessionID {
			continue
		}
		copied := *e
		if g, ok := m.games.games[e.GameID]; ok {
			copied.Game = g
		}
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Position < result[j].Position })
	return result
}

// ── suggestion repo ──

type mockSuggestionRepo struct {
	suggestions map[string]*model.Suggestion
	games       *mockGameRepo
}

func newMockSuggestionRepo(games *mockGameRepo) *mockSuggestionRepo {
	return &mockSuggestionRepo{
		suggestions: make(map[string]*model.Suggestion),
		games:       games,
	}
}

func (m *mockSuggestionRepo) CreateWithGame(ctx context.Context, game *model.Game, suggestion *model.Suggestion) error {
	if err := m.games.Create(ctx, game); err != nil {
		return err
	}
	if suggestion.SuggestionID == "" {
		suggestion.SuggestionID = uuid.NewString()
	}
	suggestion.GameID = game.GameID
	suggestion.SubmittedAt = time.Now()
	m.suggestions[suggestion.SuggestionID] = suggestion
	return nil
}

func (m *mockSuggestionRepo) GetByID(_ context.Context, id string) (*model.Suggestion, error) {
	s, ok := m.suggestions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	copied.Game = m.games.games[s.GameID]
	return &copied, nil
}

func (m *mockSuggestionRepo) List(_ context.Context, status string) ([]model.Suggestion, error) {
	var result []model.Suggestion
	for _, s := range m.suggestions {
		if status != "" && s.Status != status {
			continue
		}
		copied := *s
		copied.Game = m.games.games[s.GameID]
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}

func (m *mockSuggestionRepo) Resolve(_ context.Context, suggestion *model.Suggestion, game *model.Game) error {
	stored, ok := m.suggestions[suggestion.SuggestionID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = suggestion.Status
	stored.ModeratorNotes = suggestion.ModeratorNotes
	if g, ok := m.games.games[game.GameID]; ok {
		g.IsSuggestion = game.IsSuggestion
		g.Approved = game.Approved
	}
	return nil
}

// ── content repo ──

type mockContentRepo struct {
	blocks map[string]*model.ContentBlock
}

func newMockContentRepo() *mockContentRepo {
	return &mockContentRepo{blocks: make(map[string]*model.ContentBlock)}
}

func (m *mockContentRepo) Create(_ context.Context, block *model.ContentBlock) error {
	if block.BlockID == "" {
		block.BlockID = uuid.NewString()
	}
	m.blocks[block.BlockID] = block
	return nil
}

func (m *mockContentRepo) GetByID(_ context.Context, id string) (*model.ContentBlock, error) {
	b, ok := m.blocks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (m *mockContentRepo) ListActiveByKind(ctx context.Context, kind string) ([]model.ContentBlock, error) {
	all, _ := m.ListByKind(ctx, kind)
	var result []model.ContentBlock
	for _, b := range all {
		if b.IsActive {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *mockContentRepo) ListByKind(_ context.Context, kind string) ([]model.ContentBlock, error) {
	var result []model.ContentBlock
	for _, b := range m.blocks {
		if b.Kind == kind {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DisplayOrder < result[j].DisplayOrder
	})
	return result, nil
}

func (m *mockContentRepo) Update(_ context.Context, block *model.ContentBlock) error {
	m.blocks[block.BlockID] = block
	return nil
}

func (m *mockContentRepo) Delete(_ context.Context, id string) error {
	delete(m.blocks, id)
	return nil
}

// ── account repo ──

type mockAccountRepo struct {
	accounts map[string]*model.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{accounts: make(map[string]*model.Account)}
}

func (m *mockAccountRepo) Create(_ context.Context, account *model.Account) error {
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id string) (*model.Account, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	for _, a := range m.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── visitor store / blacklist ──

type mockVisitorStore struct {
	carts map[string][]string
	langs map[string]string
}

func newMockVisitorStore() *mockVisitorStore {
	return &mockVisitorStore{
		carts: make(map[string][]string),
		langs: make(map[string]string),
	}
}

func (m *mockVisitorStore) GetCart(_ context.Context, visitorID string) ([]string, error) {
	return m.carts[visitorID], nil
}

func (m *mockVisitorStore) SaveCart(_ context.Context, visitorID string, ids []string, _ time.Duration) error {
	if len(ids) == 0 {
		delete(m.carts, visitorID)
		return nil
	}
	m.carts[visitorID] = ids
	return nil
}

func (m *mockVisitorStore) GetLanguage(_ context.Context, visitorID string) (string, error) {
	return m.langs[visitorID], nil
}

func (m *mockVisitorStore) SetLanguage(_ context.Context, visitorID, code string, _ time.Duration) error {
	m.langs[visitorID] = code
	return nil
}

type mockBlacklist struct {
	tokens map[string]bool
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{tokens: make(map[string]bool)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, _ time.Duration) error {
	m.tokens[jti] = true
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	return m.tokens[jti], nil
}

// ── test fixture ──

type testEnv struct {
	repo      *repository.Repository
	gameRepo  *mockGameRepo
	tagRepo   *mockTagRepo
	langRepo  *mockLanguageRepo
	sessRepo  *mockSessionRepo
	suggRepo  *mockSuggestionRepo
	contRepo  *mockContentRepo
	accRepo   *mockAccountRepo
	store     *mockVisitorStore
	blacklist *mockBlacklist
	cfg       *config.Config
	logger    *zap.Logger
}

func newTestEnv() *testEnv {
	games := newMockGameRepo()
	env := &testEnv{
		gameRepo:  games,
		tagRepo:   newMockTagRepo(),
		langRepo:  newMockLanguageRepo(),
		sessRepo:  newMockSessionRepo(games),
		suggRepo:  newMockSuggestionRepo(games),
		contRepo:  newMockContentRepo(),
		accRepo:   newMockAccountRepo(),
		store:     newMockVisitorStore(),
		blacklist: newMockBlacklist(),
		logger:    zap.NewNop(),
	}
	env.repo = &repository.Repository{
		Game:       env.gameRepo,
		Tag:        env.tagRepo,
		Language:   env.langRepo,
		Session:    env.sessRepo,
		Suggestion: env.suggRepo,
		Content:    env.contRepo,
		Account:    env.accRepo,
	}
	env.cfg = &config.Config{
		Catalog: config.CatalogConfig{
			PageSize:        12,
			DefaultLanguage: "en",
			CartTTL:         time.Hour,
		},
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-16-chars",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	return env
}

// visibleGame inserts a publicly visible game and returns it.
func (e *testEnv) visibleGame(name, duration string) *model.Game {
	g := &model.Game{
		Name:        name,
		Description: name + " description",
		PlayerCount: "3-4",
		Duration:    duration,
		IsActive:    true,
	}
	_ = e.gameRepo.Create(context.Background(), g)
	return g
}
