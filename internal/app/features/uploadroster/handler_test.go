// internal/app/features/uploadroster/handler_test.go
package uploadroster_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/coderelay/internhub/internal/app/features/uploadroster"
	"github.com/coderelay/internhub/internal/app/features/uploadroster/rosterio"
	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	statusstore "github.com/coderelay/internhub/internal/app/store/statuses"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/testutil"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		panic(err)
	}
	templates.UseEngine(eng, zap.NewNop())
	os.Exit(m.Run())
}

func setup(t *testing.T) (*uploadroster.Handler, *rosterstore.Store, *assignment.Service) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	rosters := rosterstore.New(db)
	svc := assignment.New(rosters, statusstore.New(db), 1, zap.NewNop())
	return uploadroster.NewHandler(db, rosters, svc, zap.NewNop()), rosters, svc
}

// multipartUpload builds a POST /upload/preview request carrying a
// roster file.
func multipartUpload(t *testing.T, roster, filename string, contents []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("roster", roster); err != nil {
		t.Fatalf("writing roster field: %v", err)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating file part: %v", err)
	}
	if _, err := fw.Write(contents); err != nil {
		t.Fatalf("writing file part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/upload/preview", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const internsCSV = "Full Name,Email Address,Contact Number,Affiliation,Gender\n" +
	"Ana Reyes,ana@acme.test,555-0101,acme,F\n" +
	"Ben Cruz,ben@acme.test,555-0102,acme,M\n"

func TestForm_RendersWithCounts(t *testing.T) {
	h, _, _ := setup(t)

	req := testutil.NewRequest(http.MethodGet, "/upload")
	rec := testutil.NewRecorder()
	h.Form(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Upload Rosters")
}

func TestPreview_ValidCSV(t *testing.T) {
	h, _, _ := setup(t)

	req := multipartUpload(t, uploadroster.RosterInterns, "interns.csv", []byte(internsCSV))
	rec := testutil.NewRecorder()
	h.Preview(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "ana@acme.test")
	rec.AssertContains(t, "ben@acme.test")
	rec.AssertContains(t, "Confirm import")
}

func TestPreview_RowErrors(t *testing.T) {
	h, _, _ := setup(t)

	bad := "Full Name,Email Address,Contact Number,Affiliation\n" +
		"No Email,,555-0100,acme\n"
	req := multipartUpload(t, uploadroster.RosterInterns, "interns.csv", []byte(bad))
	rec := testutil.NewRecorder()
	h.Preview(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "missing email address")
}

func TestPreview_UnknownRosterType(t *testing.T) {
	h, _, _ := setup(t)

	req := multipartUpload(t, "managers", "interns.csv", []byte(internsCSV))
	rec := testutil.NewRecorder()
	h.Preview(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Unknown roster type.")
}

func TestPreview_UnsupportedExtension(t *testing.T) {
	h, _, _ := setup(t)

	req := multipartUpload(t, uploadroster.RosterInterns, "interns.pdf", []byte(internsCSV))
	rec := testutil.NewRecorder()
	h.Preview(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Only .csv and .xlsx roster files are supported.")
}

func TestConfirm_ImportsAndReloads(t *testing.T) {
	h, rosters, svc := setup(t)

	rows := []rosterio.Row{
		{Line: 2, FullName: "Ana Reyes", Email: "ana@acme.test", ContactNumber: "555-0101", Affiliation: "acme"},
		{Line: 3, FullName: "Ben Cruz", Email: "ben@acme.test", ContactNumber: "555-0102", Affiliation: "acme"},
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}

	form := url.Values{}
	form.Set("roster", uploadroster.RosterInterns)
	form.Set("payload", string(payload))
	req := testutil.NewFormRequest("/upload/confirm", form)
	rec := testutil.NewRecorder()
	h.Confirm(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "2 rows imported")

	ctx, cancel := testutil.TestContext()
	defer cancel()
	interns, err := rosters.ListInterns(ctx)
	if err != nil {
		t.Fatalf("ListInterns failed: %v", err)
	}
	if len(interns) != 2 {
		t.Fatalf("got %d interns, want 2", len(interns))
	}
	if interns[0].Email != "ana@acme.test" {
		t.Errorf("first intern = %q, want upload order preserved", interns[0].Email)
	}
	// Interns with no tech leads stay unassigned but count as loaded.
	if !svc.Loaded() {
		t.Error("expected allocation to be rebuilt after import")
	}
}

func TestConfirm_MalformedPayload(t *testing.T) {
	h, _, _ := setup(t)

	form := url.Values{}
	form.Set("roster", uploadroster.RosterInterns)
	form.Set("payload", "{not json")
	req := testutil.NewFormRequest("/upload/confirm", form)
	rec := testutil.NewRecorder()
	h.Confirm(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestConfirm_EmptyRows(t *testing.T) {
	h, _, _ := setup(t)

	form := url.Values{}
	form.Set("roster", uploadroster.RosterTechLeads)
	form.Set("payload", "[]")
	req := testutil.NewFormRequest("/upload/confirm", form)
	rec := testutil.NewRecorder()
	h.Confirm(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}
