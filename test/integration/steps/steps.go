// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rc-finance/backend/config"
	"github.com/rc-finance/backend/internal/infra/dependency"
	"github.com/rc-finance/backend/internal/integration/persistence/model"
	"github.com/rc-finance/backend/test/integration/mock"
)

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	timeMock      *mock.Time
	currentUserID uuid.UUID
	goalIDs       map[string]int64
	lastGoalID    int64
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Time
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeScenario registers every step definition and wires the
// shared server, database and clock.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	if testClock == nil {
		testClock = mock.NewTime()
	}

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testClock,
		db: mock.NewDb(map[string]any{
			"goals":              &model.GoalModel{},
			"allocation_weights": &model.WeightModel{},
			"funding_history":    &model.FundingRecordModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Identity steps
	ctx.Given(`^I am identified as a user$`, test.iAmIdentifiedAsAUser)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Goal setup steps
	ctx.Given(`^the following goals exist:$`, test.theFollowingGoalsExist)
	ctx.Given(`^a goal exists with name "([^"]*)" and target (\d+(?:\.\d+)?)$`, test.aGoalExistsWithNameAndTarget)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.currentUserID = uuid.Nil
	t.goalIDs = make(map[string]int64)
	t.lastGoalID = 0
	t.response = nil
	t.timeMock.SetCurrentTime(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, testClock)
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) todayIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	t.timeMock.SetCurrentTime(parsed.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmIdentifiedAsAUser() error {
	t.currentUserID = uuid.New()
	t.headers["X-User-ID"] = t.currentUserID.String()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// theFollowingGoalsExist seeds goals from a table with columns:
// name, target, funded, due_date, impact (funded, due_date and impact
// optional; empty due_date means no deadline).
func (t *testContext) theFollowingGoalsExist(table *godog.Table) error {
	if t.currentUserID == uuid.Nil {
		if err := t.iAmIdentifiedAsAUser(); err != nil {
			return err
		}
	}
	if len(table.Rows) < 2 {
		return errors.New("goals table needs a header row and at least one data row")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}

	cell := func(row int, column string) string {
		idx, ok := columns[column]
		if !ok {
			return ""
		}
		return table.Rows[row].Cells[idx].Value
	}

	for row := 1; row < len(table.Rows); row++ {
		name := cell(row, "name")
		target, err := strconv.ParseFloat(cell(row, "target"), 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid target: %w", row, err)
		}

		funded := 0.0
		if raw := cell(row, "funded"); raw != "" {
			if funded, err = strconv.ParseFloat(raw, 64); err != nil {
				return fmt.Errorf("row %d: invalid funded: %w", row, err)
			}
		}

		impact := 0.5
		if raw := cell(row, "impact"); raw != "" {
			if impact, err = strconv.ParseFloat(raw, 64); err != nil {
				return fmt.Errorf("row %d: invalid impact: %w", row, err)
			}
		}

		var dueDate *time.Time
		if raw := cell(row, "due_date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return fmt.Errorf("row %d: invalid due_date: %w", row, err)
			}
			dueDate = &parsed
		}

		if err := t.createGoal(name, target, funded, dueDate, impact); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aGoalExistsWithNameAndTarget(name string, target float64) error {
	if t.currentUserID == uuid.Nil {
		if err := t.iAmIdentifiedAsAUser(); err != nil {
			return err
		}
	}
	return t.createGoal(name, target, 0, nil, 0.5)
}

func (t *testContext) createGoal(name string, target, funded float64, dueDate *time.Time, impact float64) error {
	now := t.timeMock.Now()
	goalModel := &model.GoalModel{
		UserID:        t.currentUserID,
		Name:          name,
		TargetAmount:  target,
		FundedAmount:  funded,
		DueDate:       dueDate,
		Impact:        impact,
		PriorityUser:  0.5,
		StabilityHint: 0.5,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := t.db.DbConn.Create(goalModel).Error; err != nil {
		return err
	}

	t.goalIDs[name] = goalModel.ID
	t.lastGoalID = goalModel.ID
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", strconv.FormatInt(t.lastGoalID, 10))
	for name, id := range t.goalIDs {
		content = strings.ReplaceAll(content, "{{goal_id:"+name+"}}", strconv.FormatInt(id, 10))
	}
	return content
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the goal ID from create responses for later steps.
		if idValue, ok := responseBody["id"].(float64); ok {
			if _, hasTarget := responseBody["target_amount"]; hasTarget {
				t.lastGoalID = int64(idValue)
				if name, ok := responseBody["name"].(string); ok {
					t.goalIDs[name] = t.lastGoalID
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entitySlicePtr := newModelSlice(entity)
	if err := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	entitySlicePtr := newModelSlice(entity)
	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func newModelSlice(entity any) reflect.Value {
	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)
	return entitySlicePtr
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
