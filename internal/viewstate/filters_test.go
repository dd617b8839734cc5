package viewstate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexconnect/internal/domain"
	"lexconnect/internal/viewstate"
)

var filterDocs = []domain.Document{
	{ID: "DOC001", Name: "Contrato de Arras.pdf", CaseID: "CASO001", Status: domain.DocumentSigned},
	{ID: "DOC002", Name: "Poder General para Pleitos.docx", CaseID: "CASO001", Status: domain.DocumentAwaitingSignature},
	{ID: "DOC003", Name: "Alegaciones a Multa.pdf", CaseID: "CASO002", Status: domain.DocumentCompleted},
}

func docName(d domain.Document) string { return d.Name }
func docCase(d domain.Document) string { return d.CaseID }

func TestApply_Idempotent(t *testing.T) {
	pred := viewstate.And(
		viewstate.SearchText("pdf", docName),
		viewstate.Equals[domain.Document](viewstate.All, docCase),
	)

	once := viewstate.Apply(filterDocs, pred)
	twice := viewstate.Apply(once, pred)

	assert.Equal(t, once, twice)
}

func TestSearchText_CaseInsensitiveSubstring(t *testing.T) {
	got := viewstate.Apply(filterDocs, viewstate.SearchText("PODER", docName))
	assert.Len(t, got, 1)
	assert.Equal(t, "DOC002", got[0].ID)
}

func TestSearchText_MatchesAnyNominatedField(t *testing.T) {
	got := viewstate.Apply(filterDocs, viewstate.SearchText("caso002", docName, docCase))
	assert.Len(t, got, 1)
	assert.Equal(t, "DOC003", got[0].ID)
}

func TestSearchText_EmptyTermIsNoOp(t *testing.T) {
	got := viewstate.Apply(filterDocs, viewstate.SearchText("  ", docName))
	assert.Len(t, got, len(filterDocs))
}

func TestEquals_AllSentinelIsNoOp(t *testing.T) {
	got := viewstate.Apply(filterDocs, viewstate.Equals[domain.Document](viewstate.All, docCase))
	assert.Len(t, got, len(filterDocs))

	got = viewstate.Apply(filterDocs, viewstate.Equals("CASO001", docCase))
	assert.Len(t, got, 2)
}

func TestAnd_NarrowsByEveryPredicate(t *testing.T) {
	pred := viewstate.And(
		viewstate.SearchText("pdf", docName),
		viewstate.Equals("CASO001", docCase),
	)
	got := viewstate.Apply(filterDocs, pred)
	assert.Len(t, got, 1)
	assert.Equal(t, "DOC001", got[0].ID)
}

var taxonomy = []domain.CaseSubtype{
	{ID: "JU-001", BaseType: domain.BaseTypeJudicial, Name: "Civil"},
	{ID: "JU-002", BaseType: domain.BaseTypeJudicial, Name: "Laboral"},
	{ID: "AD-001", BaseType: domain.BaseTypeAdministrative, Name: "Sanciones"},
}

func TestSubtypeChoices_DependentOnBaseType(t *testing.T) {
	assert.Equal(t, []string{"Civil", "Laboral"}, viewstate.SubtypeChoices(taxonomy, "judicial"))
	assert.Equal(t, []string{"Sanciones"}, viewstate.SubtypeChoices(taxonomy, "administrative"))
	assert.Equal(t, []string{"Civil", "Laboral", "Sanciones"}, viewstate.SubtypeChoices(taxonomy, viewstate.All))
}

func TestNormalizeSubtype_StaleSelectionResetsToAll(t *testing.T) {
	// "Civil" was selected under judicial; switching the base type to
	// administrative invalidates it.
	choices := viewstate.SubtypeChoices(taxonomy, "administrative")
	assert.Equal(t, viewstate.All, viewstate.NormalizeSubtype("Civil", choices))
}

func TestNormalizeSubtype_ValidSelectionKept(t *testing.T) {
	choices := viewstate.SubtypeChoices(taxonomy, "judicial")
	assert.Equal(t, "Laboral", viewstate.NormalizeSubtype("Laboral", choices))
	assert.Equal(t, viewstate.All, viewstate.NormalizeSubtype("", choices))
}
