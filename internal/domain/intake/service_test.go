package intake

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newTestService(t *testing.T) (*Service, *Session) {
	t.Helper()
	svc := NewService(NewMemSessionRepository(), zerolog.Nop())
	sess, err := svc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return svc, sess
}

// defaultAnswer picks a sensible answer for a prompt: overrides win, yes/no
// questions answer "No", multi-selects pick "None" when offered, numeric
// inputs use the lower bound, free text is filled in.
func defaultAnswer(p Prompt, overrides map[string]Answer) Answer {
	if a, ok := overrides[p.NodeID]; ok {
		return a
	}
	switch p.Input {
	case InputChoice:
		if len(p.Options) == 2 && p.Options[0] == "Yes" && p.Options[1] == "No" {
			return Answer{Value: "No"}
		}
		return Answer{Value: p.Options[0]}
	case InputMulti:
		for _, opt := range p.Options {
			if opt == "None" {
				return Answer{Values: []string{opt}}
			}
		}
		return Answer{Values: []string{p.Options[0]}}
	case InputInteger, InputDecimal:
		if p.Bounds != nil {
			return Answer{Value: strconv.FormatFloat(p.Bounds.Min, 'f', -1, 64)}
		}
		return Answer{Value: "0"}
	case InputText:
		return Answer{Value: "none"}
	}
	return Answer{}
}

// walk drives the conversation with default answers until stopAt (or the end
// node) is reached, returning the node ids that were answered.
func walk(t *testing.T, svc *Service, sess *Session, overrides map[string]Answer, stopAt string) []string {
	t.Helper()
	ctx := context.Background()
	var visited []string

	for i := 0; i < 200; i++ {
		current, err := svc.GetSession(ctx, sess.ID)
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if current.CurrentNodeID == stopAt || current.CurrentNodeID == NodeEnd {
			return visited
		}
		prompt, err := svc.NextPrompt(current.CurrentNodeID)
		if err != nil {
			t.Fatalf("prompt for %q: %v", current.CurrentNodeID, err)
		}
		a := defaultAnswer(prompt, overrides)
		if _, err := svc.SubmitAnswer(ctx, sess.ID, current.CurrentNodeID, a); err != nil {
			t.Fatalf("submit %q at %q: %v", a.Value, current.CurrentNodeID, err)
		}
		visited = append(visited, current.CurrentNodeID)
	}
	t.Fatalf("conversation did not reach %q within step limit", stopAt)
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func TestSubmitAnswerRecordsAge(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SubmitAnswer(ctx, sess.ID, NodeStart, Answer{Value: "Begin"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	res, err := svc.SubmitAnswer(ctx, sess.ID, nodeAge, Answer{Value: "44"})
	if err != nil {
		t.Fatalf("age: %v", err)
	}
	if res.Record.Demographics.Age == nil || *res.Record.Demographics.Age != 44 {
		t.Errorf("age not recorded, got %v", res.Record.Demographics.Age)
	}
	if res.NextNodeID != "sex" {
		t.Errorf("next node = %q, want sex", res.NextNodeID)
	}
}

func TestInvalidAnswerLeavesStateUnchanged(t *testing.T) {
	svc, sess := newTestService(t)
	ctx := context.Background()

	svc.SubmitAnswer(ctx, sess.ID, NodeStart, Answer{Value: "Begin"})

	for _, bad := range []string{"200", "-5", "forty"} {
		_, err := svc.SubmitAnswer(ctx, sess.ID, nodeAge, Answer{Value: bad})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("age %q: expected ValidationError, got %v", bad, err)
		}
		got, _ := svc.GetSession(ctx, sess.ID)
		if got.CurrentNodeID != nodeAge {
			t.Errorf("age %q: pointer advanced to %q", bad, got.CurrentNodeID)
		}
		if got.Record.Demographics.Age != nil {
			t.Errorf("age %q: record partially written", bad)
		}
	}

	// The user may retry indefinitely; a valid answer still goes through.
	if _, err := svc.SubmitAnswer(ctx, sess.ID, nodeAge, Answer{Value: "33"}); err != nil {
		t.Fatalf("valid retry rejected: %v", err)
	}
}

func TestPackYearsDerivation(t *testing.T) {
	svc, sess := newTestService(t)
	overrides := map[string]Answer{
		nodeAge:         {Value: "55"},
		"smokingStatus": {Value: "Yes"},
		"packsPerDay":   {Value: "1.5"},
		"smokingYears":  {Value: "20"},
	}
	walk(t, svc, sess, overrides, "alcoholStatus")

	got, _ := svc.GetSession(context.Background(), sess.ID)
	s := got.Record.Lifestyle.Smoking
	if s == nil || s.PackYears == nil {
		t.Fatal("pack-years not derived")
	}
	if *s.PackYears != 30.0 {
		t.Errorf("pack-years = %v, want 30.0", *s.PackYears)
	}
}

func TestSmokingNoSkipsSubFlow(t *testing.T) {
	svc, sess := newTestService(t)
	visited := walk(t, svc, sess, map[string]Answer{nodeAge: {Value: "40"}}, "alcoholStatus")

	if contains(visited, "packsPerDay") || contains(visited, "smokingYears") {
		t.Error("non-smoker was routed through the smoking sub-flow")
	}
}

func TestAlcoholYesEntersAmountQuestion(t *testing.T) {
	svc, sess := newTestService(t)
	overrides := map[string]Answer{
		nodeAge:         {Value: "40"},
		"alcoholStatus": {Value: "Yes"},
		"drinksPerWeek": {Value: "8"},
	}
	visited := walk(t, svc, sess, overrides, "saltySmokedFoods")

	if !contains(visited, "drinksPerWeek") {
		t.Error("drinker skipped the amount question")
	}
	got, _ := svc.GetSession(context.Background(), sess.ID)
	a := got.Record.Lifestyle.Alcohol
	if a == nil || a.DrinksPerWeek == nil || *a.DrinksPerWeek != 8 {
		t.Error("drinks per week not recorded")
	}
}

func TestSexForkRoutesFemaleOnly(t *testing.T) {
	femaleOnly := []string{"menarcheAge", "menstruationStatus", "goffBloating"}
	maleOnly := []string{"urinarySymptoms", nodeProstate, nodeTesticular}

	svc, sess := newTestService(t)
	overrides := map[string]Answer{
		nodeAge: {Value: "35"},
		"sex":   {Value: "Female"},
	}
	visited := walk(t, svc, sess, overrides, NodeSummary)
	for _, id := range femaleOnly {
		if !contains(visited, id) {
			t.Errorf("female walk skipped %q", id)
		}
	}
	for _, id := range maleOnly {
		if contains(visited, id) {
			t.Errorf("female walk visited male-only node %q", id)
		}
	}

	svc, sess = newTestService(t)
	overrides["sex"] = Answer{Value: "Male"}
	visited = walk(t, svc, sess, overrides, NodeSummary)
	for _, id := range maleOnly {
		if !contains(visited, id) {
			t.Errorf("male walk skipped %q", id)
		}
	}
	for _, id := range femaleOnly {
		if contains(visited, id) {
			t.Errorf("male walk visited female-only node %q", id)
		}
	}
}

func TestProstateQuestionSkippedUnder30(t *testing.T) {
	svc, sess := newTestService(t)
	overrides := map[string]Answer{
		nodeAge: {Value: "25"},
		"sex":   {Value: "Male"},
	}
	visited := walk(t, svc, sess, overrides, NodeSummary)

	if contains(visited, nodeProstate) {
		t.Error("under-30 male was asked the prostate-test question")
	}
	got, _ := svc.GetSession(context.Background(), sess.ID)
	pt := got.Record.SexSpecificInfo.Male.ProstateTest
	if pt == nil {
		t.Fatal("prostate-test answer was not auto-filled")
	}
	if pt.Had {
		t.Error("auto-filled answer claims a test was had")
	}
	if pt.AgeAtLast == nil || *pt.AgeAtLast != "N/A" {
		t.Errorf("auto-filled age = %v, want N/A", pt.AgeAtLast)
	}
}

func TestProstateQuestionAskedAt30AndOver(t *testing.T) {
	svc, sess := newTestService(t)
	overrides := map[string]Answer{
		nodeAge: {Value: "30"},
		"sex":   {Value: "Male"},
	}
	visited := walk(t, svc, sess, overrides, NodeSummary)
	if !contains(visited, nodeProstate) {
		t.Error("30-year-old male should be asked the prostate-test question")
	}
}

func TestRestartClearsRecord(t *testing.T) {
	svc, sess := newTestService(t)
	walk(t, svc, sess, map[string]Answer{nodeAge: {Value: "50"}}, NodeSummary)

	res, err := svc.SubmitAnswer(context.Background(), sess.ID, NodeSummary, Answer{Value: "Restart"})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if res.NextNodeID != NodeStart {
		t.Errorf("next node = %q, want start", res.NextNodeID)
	}
	if res.Record.Demographics.Age != nil {
		t.Error("record not cleared on restart")
	}
}

func TestFinishCompletesSession(t *testing.T) {
	svc, sess := newTestService(t)
	walk(t, svc, sess, map[string]Answer{nodeAge: {Value: "50"}}, NodeSummary)
	ctx := context.Background()

	res, err := svc.SubmitAnswer(ctx, sess.ID, NodeSummary, Answer{Value: "Finish"})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.NextNodeID != NodeEnd {
		t.Errorf("next node = %q, want end", res.NextNodeID)
	}
	if !res.NextPrompt.Terminal {
		t.Error("end prompt not marked terminal")
	}

	if _, err := svc.SubmitAnswer(ctx, sess.ID, NodeEnd, Answer{Value: "x"}); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("answering a finished session: got %v, want ErrSessionComplete", err)
	}
}

func TestNodeMismatchRejected(t *testing.T) {
	svc, sess := newTestService(t)
	_, err := svc.SubmitAnswer(context.Background(), sess.ID, nodeAge, Answer{Value: "40"})
	if !errors.Is(err, ErrNodeMismatch) {
		t.Errorf("got %v, want ErrNodeMismatch", err)
	}
}

func TestUnknownSessionRejected(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.SubmitAnswer(context.Background(), uuid.New(), NodeStart, Answer{Value: "Begin"})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestHPVAnswerMirroredForFemales(t *testing.T) {
	svc, sess := newTestService(t)
	overrides := map[string]Answer{
		nodeAge:      {Value: "30"},
		"sex":        {Value: "Female"},
		"hpvVaccine": {Value: "Yes"},
	}
	walk(t, svc, sess, overrides, NodeSummary)

	got, _ := svc.GetSession(context.Background(), sess.ID)
	if got.Record.Vaccinations.HPV == nil || !*got.Record.Vaccinations.HPV {
		t.Error("vaccination record missing HPV answer")
	}
	f := got.Record.SexSpecificInfo.Female
	if f == nil || f.HPVVaccine == nil || !*f.HPVVaccine {
		t.Error("female record missing mirrored HPV answer")
	}
}
