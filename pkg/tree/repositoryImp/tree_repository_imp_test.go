package repositoryImp_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"farmsurvey/database"
	"farmsurvey/entities"
	surveyRepoImp "farmsurvey/pkg/survey/repositoryImp"
	treeRepoImp "farmsurvey/pkg/tree/repositoryImp"
)

// The foreign key must sit on trees.survey_id referencing farm_surveys,
// not the other way around: surveys insert freely, orphan trees do not.
func TestForeignKeyPointsFromTreeToSurvey(t *testing.T) {
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	surveys := surveyRepoImp.New(db)
	trees := treeRepoImp.New(db)

	sv := &entities.FarmSurvey{
		FarmerName:  "Alice",
		CropType:    "Wheat",
		Latitude:    10,
		Longitude:   20,
		LastUpdated: time.Now().UTC(),
	}
	require.NoError(t, surveys.Create(sv))
	require.NotZero(t, sv.SurveyID)

	require.NoError(t, trees.Create(&entities.Tree{
		SurveyID:    sv.SurveyID,
		SpeciesName: "Oak",
		TreeCount:   1,
	}))

	// constraint enforcement, independent of the service-level guard
	require.Error(t, trees.Create(&entities.Tree{
		SurveyID:    sv.SurveyID + 1000,
		SpeciesName: "Pine",
		TreeCount:   1,
	}))
}
