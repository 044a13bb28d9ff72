package handlers_test

import (
	"net/http"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreatePerson_Success() {
	req := dto.CreatePersonRequest{Name: "Tanaka"}
	suite.mockPersonService.On("CreatePerson", mock.Anything, req, testUserID).
		Return(&domain.Person{ID: "p-1", Name: "Tanaka"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/persons", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PersonResponse
	suite.decode(w, &resp)
	suite.Equal("p-1", resp.ID)
	suite.Equal("Tanaka", resp.Name)
}

func (suite *HandlerTestSuite) TestCreatePerson_BadJSON() {
	w := suite.do(http.MethodPost, "/api/v1/persons", `{"name":`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetPerson() {
	suite.mockPersonService.On("GetPersonByID", mock.Anything, "p-1").
		Return(&domain.Person{ID: "p-1", Name: "Tanaka"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/persons/p-1", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListPersons() {
	suite.mockPersonService.On("ListPersons", mock.Anything, false).
		Return([]domain.Person{{ID: "p-1", Name: "Tanaka"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/persons", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPersonsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Persons, 1)
}

func (suite *HandlerTestSuite) TestArchivePerson_NotFound() {
	suite.mockPersonService.On("SetPersonArchived", mock.Anything, "ghost", true, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPatch, "/api/v1/persons/ghost/archive", `{"archived":true}`)

	suite.Equal(http.StatusNotFound, w.Code)
}
