package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/syahrilTGR/CaloriLens/models"
)

// Value is a typed Firestore REST field. Only the kinds the meal log
// documents need are represented.
type Value struct {
	StringValue    *string     `json:"stringValue,omitempty"`
	DoubleValue    *float64    `json:"doubleValue,omitempty"`
	TimestampValue *string     `json:"timestampValue,omitempty"`
	ArrayValue     *ArrayValue `json:"arrayValue,omitempty"`
	MapValue       *MapValue   `json:"mapValue,omitempty"`
}

type ArrayValue struct {
	Values []Value `json:"values"`
}

type MapValue struct {
	Fields map[string]Value `json:"fields"`
}

func String(s string) Value  { return Value{StringValue: &s} }
func Double(f float64) Value { return Value{DoubleValue: &f} }

func Timestamp(t time.Time) Value {
	s := t.UTC().Format(time.RFC3339)
	return Value{TimestampValue: &s}
}

func Array(values []Value) Value {
	return Value{ArrayValue: &ArrayValue{Values: values}}
}

func Map(fields map[string]Value) Value {
	return Value{MapValue: &MapValue{Fields: fields}}
}

// MealLogFields encodes a meal log into Firestore typed fields.
func MealLogFields(m models.MealLog) map[string]Value {
	items := make([]Value, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, Map(map[string]Value{
			"name":     String(it.Name),
			"calories": Double(it.Calories),
		}))
	}
	return map[string]Value{
		"date":          String(m.Date),
		"totalCalories": Double(m.TotalCalories),
		"timestamp":     Timestamp(m.Timestamp),
		"items":         Array(items),
	}
}

// FirestoreREST creates documents over the Firestore REST API, authorized
// with the bearer token of a user session.
type FirestoreREST struct {
	projectID string
	baseURL   string
	client    *http.Client
}

func NewFirestoreREST(projectID string) *FirestoreREST {
	return &FirestoreREST{
		projectID: projectID,
		baseURL:   "https://firestore.googleapis.com/v1",
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type restDocument struct {
	Fields map[string]Value `json:"fields"`
}

// CreateDocument POSTs one document to a collection path such as
// "users/{uid}/mealLogs", letting Firestore pick the document ID.
func (c *FirestoreREST) CreateDocument(session *Session, collectionPath string, fields map[string]Value) error {
	b, err := json.Marshal(restDocument{Fields: fields})
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	u := fmt.Sprintf("%s/projects/%s/databases/(default)/documents/%s",
		c.baseURL, c.projectID, collectionPath)

	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create document request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.IDToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Firestore: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Firestore response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("firestore write error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
