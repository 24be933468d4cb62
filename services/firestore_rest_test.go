package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syahrilTGR/CaloriLens/models"
)

func TestMealLogFields(t *testing.T) {
	at := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	meal := models.NewMealLog(at, []models.MealItem{
		{Name: "Ayam Goreng", Calories: 261},
		{Name: "Nasi Putih", Calories: 179.6},
	})

	fields := MealLogFields(meal)

	require.NotNil(t, fields["date"].StringValue)
	assert.Equal(t, "2024-03-10", *fields["date"].StringValue)

	require.NotNil(t, fields["totalCalories"].DoubleValue)
	assert.InDelta(t, 440.6, *fields["totalCalories"].DoubleValue, 1e-9)

	require.NotNil(t, fields["timestamp"].TimestampValue)
	assert.Equal(t, "2024-03-10T08:00:00Z", *fields["timestamp"].TimestampValue)

	require.NotNil(t, fields["items"].ArrayValue)
	items := fields["items"].ArrayValue.Values
	require.Len(t, items, 2)
	require.NotNil(t, items[0].MapValue)
	assert.Equal(t, "Ayam Goreng", *items[0].MapValue.Fields["name"].StringValue)
	assert.Equal(t, 261.0, *items[0].MapValue.Fields["calories"].DoubleValue)
}

func TestMealLogFieldsJSONShape(t *testing.T) {
	at := time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)
	meal := models.NewMealLog(at, []models.MealItem{{Name: "Mie Goreng", Calories: 403}})

	b, err := json.Marshal(restDocument{Fields: MealLogFields(meal)})
	require.NoError(t, err)

	// The wire format the Firestore REST API expects
	var doc map[string]map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "2024-03-10", doc["fields"]["date"]["stringValue"])
	assert.Equal(t, 403.0, doc["fields"]["totalCalories"]["doubleValue"])
	assert.Equal(t, "2024-03-10T19:00:00Z", doc["fields"]["timestamp"]["timestampValue"])
	assert.NotContains(t, doc["fields"]["date"], "doubleValue")
}

func TestCreateDocument(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = json.Marshal(mustDecode(t, r))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	db := NewFirestoreREST("calorilens-test")
	db.baseURL = srv.URL
	session := &Session{IDToken: "token-123", UserID: "uid-456"}

	fields := map[string]Value{"date": String("2024-03-10")}
	err := db.CreateDocument(session, "users/uid-456/mealLogs", fields)

	require.NoError(t, err)
	assert.Equal(t, "/projects/calorilens-test/databases/(default)/documents/users/uid-456/mealLogs", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.JSONEq(t, `{"fields":{"date":{"stringValue":"2024-03-10"}}}`, string(gotBody))
}

func TestCreateDocumentRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	db := NewFirestoreREST("calorilens-test")
	db.baseURL = srv.URL

	err := db.CreateDocument(&Session{IDToken: "t"}, "users/u/mealLogs", map[string]Value{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PERMISSION_DENIED")
}

func mustDecode(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
	return m
}
