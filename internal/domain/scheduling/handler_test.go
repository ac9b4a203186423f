package scheduling

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ayurcare/ayurcare/internal/platform/auth"
)

func newTestServer(t *testing.T) (*echo.Echo, *testEnv) {
	t.Helper()
	env := newTestEnv()
	e := echo.New()
	e.Use(auth.DevAuthMiddleware())
	NewHandler(env.svc).RegisterRoutes(e.Group("/api/v1"))
	return e, env
}

func bookBody(a *Appointment) string {
	b, _ := json.Marshal(map[string]interface{}{
		"doctor_id":     a.DoctorID,
		"doctor_name":   a.DoctorName,
		"doctor_email":  a.DoctorEmail,
		"patient_id":    a.PatientID,
		"patient_name":  a.PatientName,
		"patient_email": a.PatientEmail,
		"patient_phone": a.PatientPhone,
		"date":          a.Date,
		"time":          a.Time,
		"notes":         a.Notes,
	})
	return string(b)
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBookEndpoint(t *testing.T) {
	e, _ := newTestServer(t)
	a := validAppointment()

	rec := doJSON(e, http.MethodPost, "/api/v1/appointments", bookBody(a))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Status != StatusPending {
		t.Errorf("status = %s, want pending", got.Status)
	}

	// Same slot again maps to 409.
	rec = doJSON(e, http.MethodPost, "/api/v1/appointments", bookBody(a))
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate slot status = %d, want 409", rec.Code)
	}
}

func TestBookEndpointValidationError(t *testing.T) {
	e, _ := newTestServer(t)
	a := validAppointment()
	a.Date = "31/02/2025"

	rec := doJSON(e, http.MethodPost, "/api/v1/appointments", bookBody(a))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	e, env := newTestServer(t)
	a := validAppointment()
	if rec := doJSON(e, http.MethodPost, "/api/v1/appointments", bookBody(a)); rec.Code != http.StatusCreated {
		t.Fatalf("seed booking failed: %d", rec.Code)
	}

	rec := doJSON(e, http.MethodGet,
		"/api/v1/availability?doctor_id="+a.DoctorID.String()+"&date=15/10/2025&time=10:15+AM", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if avail, _ := resp["available"].(bool); avail {
		t.Error("10:15 AM should not be available next to a 10:00 AM booking")
	}

	// A failed store read maps to 503, never to "available".
	env.appts.failList = true
	rec = doJSON(e, http.MethodGet,
		"/api/v1/availability?doctor_id="+a.DoctorID.String()+"&date=15/10/2025&time=2:00+PM", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestUpdateStatusEndpointInvalidTransition(t *testing.T) {
	e, env := newTestServer(t)
	a := validAppointment()
	if rec := doJSON(e, http.MethodPost, "/api/v1/appointments", bookBody(a)); rec.Code != http.StatusCreated {
		t.Fatal("seed booking failed")
	}
	var id uuid.UUID
	for storedID := range env.appts.appointments {
		id = storedID
	}

	rec := doJSON(e, http.MethodPatch, "/api/v1/appointments/"+id.String()+"/status", `{"status":"completed"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("pending->completed status = %d, want 409", rec.Code)
	}

	rec = doJSON(e, http.MethodPatch, "/api/v1/appointments/"+id.String()+"/status", `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("pending->confirmed status = %d, want 200", rec.Code)
	}
}

func TestListEndpointRequiresParty(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/api/v1/appointments", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
