package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func patientPayload() gin.H {
	return gin.H{
		"firstName":      "Jane",
		"lastName":       "Doe",
		"birthDate":      "1970-05-12",
		"street":         "1 Main St",
		"city":           "Springfield",
		"state":          "IL",
		"zip":            "62701",
		"email":          "jane.doe@example.com",
		"phoneNumber":    "555-0100",
		"condition":      "COPD",
		"procedure":      "Bone Marrow",
		"deliveryMethod": "IVN",
	}
}

func (e *env) createPatient(t *testing.T, cookie *http.Cookie, payload gin.H) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api.stem/patients", payload, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func TestPatientAuthPolicy(t *testing.T) {
	e := newEnv()

	// CRUD routes reject like the other entities.
	rec := e.do(t, http.MethodPost, "/api.stem/patients", patientPayload())
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])

	// Report routes reject with 401.
	for _, path := range []string{
		"/api.stem/patients/search/condition?condition=COPD",
		"/api.stem/patients/search/procedure?procedure=Bone+Marrow",
		"/api.stem/patients/search/method?method=IVN",
		"/api.stem/conditions",
		"/api.stem/procedures",
		"/api.stem/methods",
	} {
		rec := e.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])
	}

	// The phone search is public; an unknown phone is a 400, not a 401.
	rec = e.do(t, http.MethodGet, "/api.stem/patients/search?phoneNumber=555-0100", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sorry, the phone 555-0100 does not exist", decodeBody(t, rec)["message"])
}

func TestPatientCreateAndSearchByPhone(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	rec := e.do(t, http.MethodPost, "/api.stem/patients", patientPayload(), cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New Patient Jane Doe created successfully", decodeBody(t, rec)["message"])

	rec = e.do(t, http.MethodGet, "/api.stem/patients/search?phoneNumber=555-0100", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Jane", body["firstName"])

	address := body["address"].(map[string]interface{})
	assert.Equal(t, "62701", address["zip"])
}

func TestPatientCreateRejectsInvalidEnum(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")

	payload := patientPayload()
	payload["deliveryMethod"] = "ORAL"
	rec := e.do(t, http.MethodPost, "/api.stem/patients", payload, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	message := decodeBody(t, rec)["message"].(string)
	assert.Contains(t, message, "deliveryMethod")
	assert.Contains(t, message, "must be one of")
}

func TestPatientCreateDuplicatePhone(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")
	e.createPatient(t, cookie, patientPayload())

	payload := patientPayload()
	payload["firstName"] = "John"
	payload["email"] = "john.doe@example.com"
	rec := e.do(t, http.MethodPost, "/api.stem/patients", payload, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sorry, the patient John Doe already exist", decodeBody(t, rec)["message"])
}

func TestPatientReports(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")
	e.createPatient(t, cookie, patientPayload())

	second := patientPayload()
	second["phoneNumber"] = "555-0101"
	second["email"] = "second@example.com"
	second["condition"] = "AI"
	second["procedure"] = "Adipose Derived Stem Cell"
	second["deliveryMethod"] = "ITC"
	e.createPatient(t, cookie, second)

	rec := e.do(t, http.MethodGet, "/api.stem/patients/search/condition?condition=AI", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []map[string]interface{}
	decodeInto(t, rec, &matches)
	require.Len(t, matches, 1)
	assert.Equal(t, "555-0101", matches[0]["phoneNumber"])

	rec = e.do(t, http.MethodGet, "/api.stem/conditions", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var conditions []map[string]interface{}
	decodeInto(t, rec, &conditions)
	require.Len(t, conditions, 2)
	for _, doc := range conditions {
		assert.Contains(t, doc, "condition")
		assert.Contains(t, doc, "_id")
		assert.NotContains(t, doc, "phoneNumber")
	}

	rec = e.do(t, http.MethodGet, "/api.stem/methods", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var methods []map[string]interface{}
	decodeInto(t, rec, &methods)
	assert.Len(t, methods, 2)
}

func TestPatientFollowUpCapOnUpdate(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")
	id := e.createPatient(t, cookie, patientPayload())

	payload := patientPayload()
	followUps := make([]gin.H, 0, 6)
	for i := 0; i < 6; i++ {
		followUps = append(followUps, gin.H{"type": "phone call", "result": 3, "date": "2024-01-15"})
	}
	payload["followUp"] = followUps
	rec := e.do(t, http.MethodPut, "/api.stem/patients/"+id, payload, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "followUp")

	payload["followUp"] = followUps[:5]
	rec = e.do(t, http.MethodPut, "/api.stem/patients/"+id, payload, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient Jane Doe updated successfully", decodeBody(t, rec)["message"])
}

func TestPatientGetByIDAndDelete(t *testing.T) {
	e := newEnv()
	cookie := e.signup(t, "omar")
	id := e.createPatient(t, cookie, patientPayload())

	rec := e.do(t, http.MethodGet, "/api.stem/patients/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane", decodeBody(t, rec)["firstName"])

	rec = e.do(t, http.MethodGet, "/api.stem/patients/"+primitive.NewObjectID().Hex(), nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())

	rec = e.do(t, http.MethodDelete, "/api.stem/patients/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Patient deleted successfully", decodeBody(t, rec)["message"])

	rec = e.do(t, http.MethodGet, "/api.stem/patients/search?phoneNumber=555-0100", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
