package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fluxcrew/lifecycle/internal/adapters/http/dto"
	"github.com/fluxcrew/lifecycle/internal/adapters/http/handlers"
	"github.com/fluxcrew/lifecycle/internal/domain"
	"github.com/fluxcrew/lifecycle/internal/domain/points"
	"github.com/fluxcrew/lifecycle/mocks"
)

func newPointsHandler(t *testing.T) (*handlers.PointsHandler, *mocks.MockPointsService) {
	t.Helper()
	svc := mocks.NewMockPointsService(t)
	return handlers.NewPointsHandler(svc), svc
}

func TestLeaderboard_Success(t *testing.T) {
	t.Parallel()
	h, svc := newPointsHandler(t)

	svc.EXPECT().Leaderboard(mock.Anything, testGuild, 1).Return(&points.Page{
		Standings: []points.Standing{{Rank: 11, Member: "M9", Points: 3}},
		Page:      1,
		Pages:     2,
		Total:     11,
	}, nil)

	rec := httptest.NewRecorder()
	h.Leaderboard(rec, newRequest(http.MethodGet, "/points/leaderboard?page=1", nil, guildParams))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.LeaderboardResponse](t, rec)
	if resp.Page != 1 || len(resp.Standings) != 1 || resp.Standings[0].Rank != 11 {
		t.Errorf("response = %+v, want page 1 with rank 11", resp)
	}
}

func TestLeaderboard_BadPage(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"?page=-1", "?page=two"} {
		t.Run(q, func(t *testing.T) {
			t.Parallel()
			h, _ := newPointsHandler(t)

			rec := httptest.NewRecorder()
			h.Leaderboard(rec, newRequest(http.MethodGet, "/points/leaderboard"+q, nil, guildParams))

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestLeaderboard_PageOutOfRange(t *testing.T) {
	t.Parallel()
	h, svc := newPointsHandler(t)

	svc.EXPECT().Leaderboard(mock.Anything, testGuild, 7).
		Return(nil, domain.NewValidationError("page", "out of range"))

	rec := httptest.NewRecorder()
	h.Leaderboard(rec, newRequest(http.MethodGet, "/points/leaderboard?page=7", nil, guildParams))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBalance_Success(t *testing.T) {
	t.Parallel()
	h, svc := newPointsHandler(t)

	svc.EXPECT().Balance(mock.Anything, testGuild, "M2").Return(42, nil)

	rec := httptest.NewRecorder()
	h.Balance(rec, newRequest(http.MethodGet, "/points/M2", nil, map[string]string{"guild": testGuild, "member": "M2"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BalanceResponse](t, rec)
	if resp.Member != "M2" || resp.Points != 42 {
		t.Errorf("response = %+v, want M2 with 42", resp)
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()
	params := map[string]string{"guild": testGuild, "member": "M2"}

	t.Run("requires task", func(t *testing.T) {
		t.Parallel()
		h, _ := newPointsHandler(t)

		rec := httptest.NewRecorder()
		h.History(rec, newRequest(http.MethodGet, "/points/M2/history", nil, params))

		requireStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("lists entries", func(t *testing.T) {
		t.Parallel()
		h, svc := newPointsHandler(t)
		svc.EXPECT().History(mock.Anything, testGuild, "M2", "Weed").Return([]points.Entry{
			{Member: "M2", Task: "Weed", Kind: points.KindAddition, Amount: 30, Timestamp: testTime},
		}, nil)

		rec := httptest.NewRecorder()
		h.History(rec, newRequest(http.MethodGet, "/points/M2/history?task=Weed", nil, params))

		requireStatus(t, rec, http.StatusOK)
		if resp := decodeJSON[dto.HistoryResponse](t, rec); len(resp.Entries) != 1 {
			t.Errorf("len(Entries) = %d, want 1", len(resp.Entries))
		}
	})
}
