package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCountryRoutesRequireSession(t *testing.T) {
	e := newEnv()

	for _, req := range []struct{ method, path string }{
		{http.MethodPost, "/api.stem/countries"},
		{http.MethodGet, "/api.stem/countries"},
		{http.MethodGet, "/api.stem/countries/abc"},
		{http.MethodPut, "/api.stem/countries/abc"},
		{http.MethodDelete, "/api.stem/countries/abc"},
	} {
		rec := e.do(t, req.method, req.path, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", req.method, req.path)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])
	}
}

func TestCountryCreate(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodPost, "/api.stem/countries", gin.H{"code": "pa", "name": "Panama"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "New Country Panama created successfully", body["message"])
	id, ok := body["id"].(string)
	require.True(t, ok)
	_, err := primitive.ObjectIDFromHex(id)
	assert.NoError(t, err)

	rec = e.do(t, http.MethodGet, "/api.stem/countries/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := decodeBody(t, rec)
	assert.Equal(t, "PA", stored["code"])
	assert.Equal(t, "Panama", stored["name"])
}

func TestCountryCreateDuplicateName(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodPost, "/api.stem/countries", gin.H{"code": "PA", "name": "Panama"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(t, http.MethodPost, "/api.stem/countries", gin.H{"code": "PA", "name": "Panama"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sorry, the country Panama already exist", decodeBody(t, rec)["message"])
}

func TestCountryGetByID(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodGet, "/api.stem/countries/not-an-id", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Specified id is not valid", decodeBody(t, rec)["message"])

	// A well-formed id that matches nothing is a 200 with a null body.
	rec = e.do(t, http.MethodGet, "/api.stem/countries/"+primitive.NewObjectID().Hex(), nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestCountryUpdateAndDelete(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodPost, "/api.stem/countries", gin.H{"code": "MX", "name": "Mexico"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	id := decodeBody(t, rec)["id"].(string)

	rec = e.do(t, http.MethodPut, "/api.stem/countries/"+id, gin.H{"code": "mx", "name": "Estados Unidos Mexicanos"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Country Estados Unidos Mexicanos updated successfully", body["message"])
	assert.Equal(t, id, body["id"])

	rec = e.do(t, http.MethodDelete, "/api.stem/countries/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Country deleted successfully", decodeBody(t, rec)["message"])

	rec = e.do(t, http.MethodGet, "/api.stem/countries/"+id, nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestCountryListEmpty(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodGet, "/api.stem/countries", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}
