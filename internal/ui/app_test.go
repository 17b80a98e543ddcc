package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/Johannes-Berggren/gonebranch/internal/git"
	"github.com/Johannes-Berggren/gonebranch/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	branches []models.BranchLine
	listErr  error
	deleted  []string
	forced   []bool
	pruned   bool
	pruneOpt git.PruneOptions
}

func (f *fakeService) ListBranches(ctx context.Context) ([]models.BranchLine, error) {
	return f.branches, f.listErr
}

func (f *fakeService) DeleteBranch(ctx context.Context, name string, force bool) error {
	f.deleted = append(f.deleted, name)
	f.forced = append(f.forced, force)
	return nil
}

func (f *fakeService) PruneGone(ctx context.Context, opts git.PruneOptions) ([]models.BranchLine, error) {
	f.pruned = true
	f.pruneOpt = opts
	return git.GoneBranches(f.branches), nil
}

func sampleBranches() []models.BranchLine {
	return []models.BranchLine{
		{Name: "main", Status: models.StatusActive, Hash: "0000bbbb", Comment: "Initial"},
		{Name: "feature/gone", Status: models.StatusDeleted, Hash: "dddd3333", Comment: "Blah 😃 blah"},
		{Name: "wip", Status: models.StatusActive, Hash: "eeee3333"},
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T, svc *fakeService) Model {
	t.Helper()
	m := NewModel(svc, false)
	msg := m.Init()()
	require.IsType(t, branchesLoadedMsg{}, msg)
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_LoadsBranches(t *testing.T) {
	svc := &fakeService{branches: sampleBranches()}
	m := loadedModel(t, svc)

	view := m.View()
	assert.Contains(t, view, "Branches (3 local, 1 gone)")
	assert.Contains(t, view, "feature/gone")
	assert.Contains(t, view, "Blah 😃 blah")
	assert.Equal(t, 1, m.branchView.GoneCount())
}

func TestModel_LoadError(t *testing.T) {
	svc := &fakeService{listErr: errors.New("not a git repository")}
	m := NewModel(svc, false)

	updated, _ := m.Update(m.Init()())
	m = updated.(Model)
	assert.Contains(t, m.View(), "Error: not a git repository")
}

func TestModel_Navigation(t *testing.T) {
	m := loadedModel(t, &fakeService{branches: sampleBranches()})

	updated, _ := m.Update(keyPress("j"))
	m = updated.(Model)
	require.NotNil(t, m.branchView.SelectedBranch())
	assert.Equal(t, "feature/gone", m.branchView.SelectedBranch().Name)

	updated, _ = m.Update(keyPress("G"))
	m = updated.(Model)
	assert.Equal(t, "wip", m.branchView.SelectedBranch().Name)

	updated, _ = m.Update(keyPress("j"))
	m = updated.(Model)
	assert.Equal(t, "wip", m.branchView.SelectedBranch().Name)

	updated, _ = m.Update(keyPress("g"))
	m = updated.(Model)
	assert.Equal(t, "main", m.branchView.SelectedBranch().Name)

	updated, _ = m.Update(keyPress("k"))
	m = updated.(Model)
	assert.Equal(t, "main", m.branchView.SelectedBranch().Name)
}

func TestModel_DeleteSelected(t *testing.T) {
	svc := &fakeService{branches: sampleBranches()}
	m := loadedModel(t, svc)

	updated, _ := m.Update(keyPress("j"))
	m = updated.(Model)

	updated, cmd := m.Update(keyPress("d"))
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, branchDeletedMsg{name: "feature/gone"}, msg)
	assert.Equal(t, []string{"feature/gone"}, svc.deleted)
	assert.Equal(t, []bool{false}, svc.forced)

	updated, cmd = m.Update(msg)
	m = updated.(Model)
	assert.Contains(t, m.View(), "Deleted feature/gone")
	require.NotNil(t, cmd)
	assert.IsType(t, branchesLoadedMsg{}, cmd())
}

func TestModel_ForceDelete(t *testing.T) {
	svc := &fakeService{branches: sampleBranches()}
	m := loadedModel(t, svc)

	_, cmd := m.Update(keyPress("D"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"main"}, svc.deleted)
	assert.Equal(t, []bool{true}, svc.forced)
}

func TestModel_Prune(t *testing.T) {
	svc := &fakeService{branches: sampleBranches()}
	m := loadedModel(t, svc)

	_, cmd := m.Update(keyPress("p"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.True(t, svc.pruned)
	assert.False(t, svc.pruneOpt.Force)
	require.IsType(t, branchesPrunedMsg{}, msg)

	updated, _ := m.Update(msg)
	assert.Contains(t, updated.(Model).View(), "Pruned 1 gone branches")
}

func TestModel_Quit(t *testing.T) {
	m := loadedModel(t, &fakeService{branches: sampleBranches()})

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBranchView_EmptyStates(t *testing.T) {
	v := NewBranchView(&fakeService{}, false)
	assert.Contains(t, v.View(), "Loading branches...")
	assert.Nil(t, v.SelectedBranch())

	v, _ = v.Update(branchesLoadedMsg{})
	assert.Contains(t, v.View(), "No local branches")

	_, cmd := v.Update(keyPress("d"))
	assert.Nil(t, cmd)
}

func TestBranchView_PruneUsesConfiguredForce(t *testing.T) {
	svc := &fakeService{branches: sampleBranches()}
	v := NewBranchView(svc, true)
	v, _ = v.Update(branchesLoadedMsg{branches: svc.branches})

	_, cmd := v.Update(keyPress("p"))
	require.NotNil(t, cmd)
	require.IsType(t, branchesPrunedMsg{}, cmd())
	assert.True(t, svc.pruneOpt.Force)
	assert.False(t, svc.pruneOpt.DryRun)
}
