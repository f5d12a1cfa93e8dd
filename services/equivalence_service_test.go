package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ufsm/equivalencias/models"
	"github.com/ufsm/equivalencias/repositories"
	"github.com/ufsm/equivalencias/repositories/mocks"
)

// EquivalenceServiceTestSuite is a test suite for the equivalence service
type EquivalenceServiceTestSuite struct {
	suite.Suite
	service       EquivalenceService
	mockEquivRepo *mocks.MockEquivalenceRepository
}

// SetupTest sets up the test suite before each test
func (suite *EquivalenceServiceTestSuite) SetupTest() {
	suite.mockEquivRepo = mocks.NewMockEquivalenceRepository(suite.T())
	suite.service = NewEquivalenceService(suite.mockEquivRepo)
}

func validForm() *models.EquivalenceForm {
	return &models.EquivalenceForm{
		DisciplinaAdm:   "Administração Financeira",
		CodigoAdm:       "ADM1034",
		ChAdm:           "60",
		DisciplinaEquiv: "Gestão Financeira",
		CodigoEquiv:     "GEF2010",
		CursoEquiv:      "Ciências Contábeis",
		ChEquiv:         "60",
		Justificativa:   "Ementas compatíveis em mais de 75%",
	}
}

// TestCreate_Success tests creating a fully populated record
func (suite *EquivalenceServiceTestSuite) TestCreate_Success() {
	suite.mockEquivRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Equivalence")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Equivalence).ID = 42
		}).
		Return(nil)

	equiv, err := suite.service.Create(context.Background(), validForm())

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), equiv)
	assert.Equal(suite.T(), 42, equiv.ID)
	assert.Equal(suite.T(), "ADM1034", equiv.CodigoAdm)
}

// TestCreate_MissingField tests that validation fails before the store
// is touched
func (suite *EquivalenceServiceTestSuite) TestCreate_MissingField() {
	form := validForm()
	form.CursoEquiv = ""

	equiv, err := suite.service.Create(context.Background(), form)

	assert.Nil(suite.T(), equiv)
	var verr *models.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), "curso_equiv", verr.Field)
	suite.mockEquivRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

// TestUpdate_AppliesSubset tests that only present fields overwrite
func (suite *EquivalenceServiceTestSuite) TestUpdate_AppliesSubset() {
	existing := &models.Equivalence{
		ID:            3,
		DisciplinaAdm: "Administração Financeira",
		CodigoAdm:     "ADM1034",
		Justificativa: "Ementas compatíveis",
	}
	suite.mockEquivRepo.On("GetByID", mock.Anything, 3).Return(existing, nil)
	suite.mockEquivRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *models.Equivalence) bool {
		return e.ID == 3 && e.CodigoAdm == "ADM2001" && e.DisciplinaAdm == "Administração Financeira"
	})).Return(nil)

	newCode := "ADM2001"
	err := suite.service.Update(context.Background(), 3, &models.EquivalenceUpdate{CodigoAdm: &newCode})

	assert.NoError(suite.T(), err)
}

// TestUpdate_EmptyValueAccepted pins the create/update asymmetry: an
// explicitly provided empty value is written as-is
func (suite *EquivalenceServiceTestSuite) TestUpdate_EmptyValueAccepted() {
	existing := &models.Equivalence{ID: 3, Justificativa: "Ementas compatíveis"}
	suite.mockEquivRepo.On("GetByID", mock.Anything, 3).Return(existing, nil)
	suite.mockEquivRepo.On("Update", mock.Anything, mock.MatchedBy(func(e *models.Equivalence) bool {
		return e.Justificativa == ""
	})).Return(nil)

	empty := ""
	err := suite.service.Update(context.Background(), 3, &models.EquivalenceUpdate{Justificativa: &empty})

	assert.NoError(suite.T(), err)
}

// TestUpdate_NotFound tests updating a non-existent record
func (suite *EquivalenceServiceTestSuite) TestUpdate_NotFound() {
	suite.mockEquivRepo.On("GetByID", mock.Anything, 9999).Return(nil, repositories.ErrNotFound)

	err := suite.service.Update(context.Background(), 9999, &models.EquivalenceUpdate{})

	assert.ErrorIs(suite.T(), err, ErrEquivalenceNotFound)
	suite.mockEquivRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

// TestDelete_NotFound tests deleting a non-existent record
func (suite *EquivalenceServiceTestSuite) TestDelete_NotFound() {
	suite.mockEquivRepo.On("Delete", mock.Anything, 9999).Return(repositories.ErrNotFound)

	err := suite.service.Delete(context.Background(), 9999)

	assert.ErrorIs(suite.T(), err, ErrEquivalenceNotFound)
}

// TestDelete_Success tests deleting an existing record
func (suite *EquivalenceServiceTestSuite) TestDelete_Success() {
	suite.mockEquivRepo.On("Delete", mock.Anything, 3).Return(nil)

	err := suite.service.Delete(context.Background(), 3)

	assert.NoError(suite.T(), err)
}

func TestEquivalenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquivalenceServiceTestSuite))
}
