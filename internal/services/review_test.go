package services

import (
	"testing"

	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type reviewFixture struct {
	svc     ReviewService
	reviews *fakeReviewRepo
	answers *fakeAnswerRepo
	owner   Subject
}

func newReviewFixture() *reviewFixture {
	answer := &types.ReviewAnswer{ID: "a1", ReviewID: "r-answered", Content: "thanks"}
	reviews := &fakeReviewRepo{reviews: map[string]*types.Review{
		"r-open":     {ID: "r-open", CenterID: "c1"},
		"r-answered": {ID: "r-answered", CenterID: "c1", Answer: answer},
		"r-other":    {ID: "r-other", CenterID: "c2"},
	}}
	answers := &fakeAnswerRepo{answers: map[string]*types.ReviewAnswer{"a1": answer}}
	centers := newFakeCenterRepo(adminCenter("c1", "owner"), adminCenter("c2", "other-owner"))
	return &reviewFixture{
		svc:     NewReviewService(logger.Nop(), centers, reviews, answers),
		reviews: reviews,
		answers: answers,
		owner:   Subject{UserID: "owner", Role: types.RoleCenterAdmin},
	}
}

func TestCreateReviewAnswer(t *testing.T) {
	f := newReviewFixture()
	dbc := dbctx.Context{}

	got, err := f.svc.CreateReviewAnswer(dbc, f.owner, "c1", "r-open", "  see you soon ")
	if err != nil {
		t.Fatalf("CreateReviewAnswer: %v", err)
	}
	if got.ReviewID != "r-open" || got.Content != "see you soon" {
		t.Fatalf("answer: got=%+v", got)
	}

	_, err = f.svc.CreateReviewAnswer(dbc, f.owner, "c1", "r-answered", "again")
	if !apierr.IsKind(err, apierr.KindConflict) || apierr.CodeOf(err) != apierr.CodeRowAlreadyExist {
		t.Fatalf("duplicate: want conflict/%s got=%s/%s", apierr.CodeRowAlreadyExist, apierr.KindOf(err), apierr.CodeOf(err))
	}

	_, err = f.svc.CreateReviewAnswer(dbc, f.owner, "c1", "r-other", "wrong center")
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("foreign review: want=%s got=%s", apierr.KindNotFound, apierr.KindOf(err))
	}

	_, err = f.svc.CreateReviewAnswer(dbc, f.owner, "c1", "r-open", " ")
	if !apierr.IsKind(err, apierr.KindBadRequest) {
		t.Fatalf("blank content: want=%s got=%s", apierr.KindBadRequest, apierr.KindOf(err))
	}
}

func TestUpdateAndDeleteReviewAnswer(t *testing.T) {
	f := newReviewFixture()
	dbc := dbctx.Context{}

	got, err := f.svc.UpdateReviewAnswer(dbc, f.owner, "c1", "r-answered", "updated")
	if err != nil {
		t.Fatalf("UpdateReviewAnswer: %v", err)
	}
	if got.Content != "updated" {
		t.Fatalf("content: want=updated got=%s", got.Content)
	}

	_, err = f.svc.UpdateReviewAnswer(dbc, f.owner, "c1", "r-open", "nothing to update")
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("update unanswered: want=%s got=%s", apierr.KindNotFound, apierr.KindOf(err))
	}
	if err := f.svc.DeleteReviewAnswer(dbc, f.owner, "c1", "r-open"); !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("delete unanswered: want=%s got=%s", apierr.KindNotFound, apierr.KindOf(err))
	}
	if err := f.svc.DeleteReviewAnswer(dbc, f.owner, "c1", "r-answered"); err != nil {
		t.Fatalf("DeleteReviewAnswer: %v", err)
	}
	if len(f.answers.deleted) != 1 || f.answers.deleted[0] != "a1" {
		t.Fatalf("deleted: got=%v", f.answers.deleted)
	}
}

func TestReviewAnswerRequiresOwner(t *testing.T) {
	f := newReviewFixture()
	_, err := f.svc.CreateReviewAnswer(dbctx.Context{}, Subject{UserID: "other-owner"}, "c1", "r-open", "hi")
	if apierr.CodeOf(err) != apierr.CodeNotAccessible {
		t.Fatalf("code: want=%s got=%s", apierr.CodeNotAccessible, apierr.CodeOf(err))
	}
}

func TestFindReviewsByCenter(t *testing.T) {
	f := newReviewFixture()
	f.reviews.page = pagination.Page[*types.Review]{
		Items: []*types.Review{{
			ID:     "r-answered",
			Tags:   []types.ReviewTag{{Word: "clean"}, {Word: "kind"}},
			Answer: &types.ReviewAnswer{ID: "a1", ReviewID: "r-answered", Content: "thanks"},
		}},
		Total: 1, Page: 1, Size: 10,
	}
	tag := "clean"
	answered := true

	got, err := f.svc.FindReviewsByCenter(dbctx.Context{}, f.owner, ReviewsByCenterQuery{
		CenterID: "c1", Tag: &tag, IsAnswered: &answered, Params: pagination.Params{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("FindReviewsByCenter: %v", err)
	}
	if f.reviews.query == nil || *f.reviews.query.Tag != "clean" || !*f.reviews.query.IsAnswered {
		t.Fatalf("delegated query: got=%+v", f.reviews.query)
	}
	if len(got.Results) != 1 || len(got.Results[0].Tags) != 2 || got.Results[0].Answer == nil {
		t.Fatalf("results: got=%+v", got.Results)
	}
}

func TestFindReviewsSummaryByCenter(t *testing.T) {
	f := newReviewFixture()
	f.reviews.counts = repos.ReviewCounts{Total: 5, Answered: 2}
	f.reviews.tags = []repos.TagCount{{Word: "clean", Count: 3}}

	got, err := f.svc.FindReviewsSummaryByCenter(dbctx.Context{}, f.owner, "c1")
	if err != nil {
		t.Fatalf("FindReviewsSummaryByCenter: %v", err)
	}
	if got.TotalCount != 5 || got.AnsweredCount != 2 || got.UnansweredCount != 3 || len(got.Tags) != 1 {
		t.Fatalf("summary: got=%+v", got)
	}
}
