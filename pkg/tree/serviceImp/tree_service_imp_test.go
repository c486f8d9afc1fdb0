package serviceImp_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmsurvey/database"
	surveyRepoImp "farmsurvey/pkg/survey/repositoryImp"
	surveyService "farmsurvey/pkg/survey/service"
	surveySvcImp "farmsurvey/pkg/survey/serviceImp"
	treeRepoImp "farmsurvey/pkg/tree/repositoryImp"
	"farmsurvey/pkg/tree/service"
	treeSvcImp "farmsurvey/pkg/tree/serviceImp"
)

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }
func str(v string) *string   { return &v }

func newFixture(t *testing.T) (service.TreeService, uint) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	sRepo := surveyRepoImp.New(db)
	tRepo := treeRepoImp.New(db)
	surveys := surveySvcImp.New(sRepo, tRepo, time.Second)
	sv, err := surveys.Create(surveyService.SurveyCreate{
		FarmerName:  "Alice",
		CropType:    "Wheat",
		GeoLocation: &surveyService.GeoLocation{Latitude: f64(10), Longitude: f64(20)},
	})
	require.NoError(t, err)
	return treeSvcImp.New(tRepo, sRepo), sv.SurveyID
}

func TestCreateUnderMissingSurvey(t *testing.T) {
	trees, _ := newFixture(t)
	_, err := trees.Create(9999, service.TreeCreate{SpeciesName: "Oak", TreeCount: 5})
	require.ErrorIs(t, err, service.ErrSurveyNotFound)

	_, err = trees.ListBySurvey(9999)
	require.ErrorIs(t, err, service.ErrSurveyNotFound)
}

func TestCreateAndGet(t *testing.T) {
	trees, surveyID := newFixture(t)

	v, err := trees.Create(surveyID, service.TreeCreate{
		SpeciesName: "Oak",
		TreeCount:   25,
		HeightAvg:   f64(12.5),
		DiameterAvg: f64(45),
		AgeAvg:      iptr(15),
		Notes:       str("mature trees in good condition"),
	})
	require.NoError(t, err)
	assert.NotZero(t, v.TreeID)
	assert.Equal(t, surveyID, v.SurveyID)
	assert.False(t, v.CreatedAt.IsZero())
	assert.False(t, v.UpdatedAt.IsZero())

	got, err := trees.Get(v.TreeID)
	require.NoError(t, err)
	assert.Equal(t, "Oak", got.SpeciesName)
	assert.Equal(t, 25, got.TreeCount)
	assert.Equal(t, 12.5, *got.HeightAvg)
	assert.Equal(t, 45.0, *got.DiameterAvg)
	assert.Equal(t, 15, *got.AgeAvg)
	assert.Equal(t, "mature trees in good condition", *got.Notes)
}

func TestOptionalMeasurementsStayNull(t *testing.T) {
	trees, surveyID := newFixture(t)

	v, err := trees.Create(surveyID, service.TreeCreate{SpeciesName: "Birch", TreeCount: 3})
	require.NoError(t, err)
	assert.Nil(t, v.HeightAvg)
	assert.Nil(t, v.DiameterAvg)
	assert.Nil(t, v.AgeAvg)
	assert.Nil(t, v.Notes)
}

func TestUpdatePartial(t *testing.T) {
	trees, surveyID := newFixture(t)
	created, err := trees.Create(surveyID, service.TreeCreate{SpeciesName: "Oak", TreeCount: 25, HeightAvg: f64(12.5)})
	require.NoError(t, err)

	v, err := trees.UpdatePartial(created.TreeID, service.TreePatch{TreeCount: iptr(30)})
	require.NoError(t, err)
	assert.Equal(t, 30, v.TreeCount)
	assert.Equal(t, "Oak", v.SpeciesName)
	assert.Equal(t, 12.5, *v.HeightAvg)
	assert.True(t, v.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, v.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateUnknownTree(t *testing.T) {
	trees, _ := newFixture(t)
	_, err := trees.UpdatePartial(777, service.TreePatch{TreeCount: iptr(1)})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDelete(t *testing.T) {
	trees, surveyID := newFixture(t)
	created, err := trees.Create(surveyID, service.TreeCreate{SpeciesName: "Oak", TreeCount: 1})
	require.NoError(t, err)

	require.NoError(t, trees.Delete(created.TreeID))
	_, err = trees.Get(created.TreeID)
	require.ErrorIs(t, err, service.ErrNotFound)

	require.ErrorIs(t, trees.Delete(created.TreeID), service.ErrNotFound)
}

func TestListBySurvey(t *testing.T) {
	trees, surveyID := newFixture(t)
	for _, sp := range []string{"Oak", "Pine", "Birch"} {
		_, err := trees.Create(surveyID, service.TreeCreate{SpeciesName: sp, TreeCount: 1})
		require.NoError(t, err)
	}

	out, err := trees.ListBySurvey(surveyID)
	require.NoError(t, err)
	require.Len(t, out, 3)
}
