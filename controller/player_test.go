package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HFC06Atyrau/HFC/db"
	"github.com/HFC06Atyrau/HFC/db/mockdb"
	"github.com/HFC06Atyrau/HFC/model"
	"github.com/HFC06Atyrau/HFC/storage"
	"github.com/HFC06Atyrau/HFC/storage/mockstorage"
	"github.com/HFC06Atyrau/HFC/testutils"
	"github.com/stretchr/testify/mock"
)

func TestUploadPlayerPhoto(t *testing.T) {
	tdb := testutils.NewTestDB()
	tc := testutils.NewTestController(tdb)
	defer tc.Close()

	ctrl, err := New(tc.Clock, tdb.DB, storage.NewForTest(tc.StorageURL()))
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	ctx := context.Background()
	alan := tdb.League.Alan

	p, err := ctrl.UploadPlayerPhoto(ctx, alan.ID, "image/png", []byte("first"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstKey := fmt.Sprintf("%s-%d.png", alan.ID, tc.Clock.Now().UnixMilli())
	if storage.KeyFromURL(p.PhotoURL) != firstKey {
		t.Errorf("expected key %s, got url %s", firstKey, p.PhotoURL)
	}
	if _, ok := tc.Storage().Object(storage.DefaultBucket, firstKey); !ok {
		t.Errorf("photo was not uploaded")
	}

	// A new photo replaces the old one in storage.
	tc.Clock.Add(time.Second)
	p, err = ctrl.UploadPlayerPhoto(ctx, alan.ID, "image/jpeg; charset=binary", []byte("second"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc.Storage().Len() != 1 {
		t.Errorf("expected the old photo to be deleted, %d objects stored", tc.Storage().Len())
	}
	saved, err := tdb.DB.GetPlayer(ctx, alan.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.PhotoURL != p.PhotoURL {
		t.Errorf("expected saved photo %s, got %s", p.PhotoURL, saved.PhotoURL)
	}

	if err := ctrl.DeletePlayerPhoto(ctx, alan.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc.Storage().Len() != 0 {
		t.Errorf("expected storage to be empty")
	}
	saved, _ = tdb.DB.GetPlayer(ctx, alan.ID)
	if saved.PhotoURL != "" {
		t.Errorf("expected photo to be cleared, got %s", saved.PhotoURL)
	}
}

func TestUploadPlayerPhoto_errors(t *testing.T) {
	tests := map[string]struct {
		storage     bool
		contentType string
		data        []byte
		err         error
	}{
		"no storage":       {storage: false, contentType: "image/png", data: []byte("x"), err: ErrStorageDisabled},
		"empty photo":      {storage: true, contentType: "image/png", data: nil, err: ErrInvalid},
		"not an image":     {storage: true, contentType: "application/pdf", data: []byte("x"), err: ErrInvalid},
		"bad content type": {storage: true, contentType: ";;", data: []byte("x"), err: ErrInvalid},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockDB := &mockdb.DB{}
			mockStorage := &mockstorage.Client{}

			var s storage.Client
			if tc.storage {
				s = mockStorage
			}
			ctrl, err := New(testDB.Clock, mockDB, s)
			if err != nil {
				t.Fatalf("error constructing controller: %v", err)
			}

			_, err = ctrl.UploadPlayerPhoto(context.Background(), "p1", tc.contentType, tc.data)
			if !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
			mockStorage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadPlayerPhoto_uploadFails(t *testing.T) {
	mockDB := &mockdb.DB{}
	mockStorage := &mockstorage.Client{}
	ctrl, err := New(testDB.Clock, mockDB, mockStorage)
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}

	uploadErr := errors.New("storage is down")
	mockDB.On("GetPlayer", mock.Anything, "p1").Return(&model.Player{ID: "p1", Name: "Alan"}, nil)
	mockStorage.On("Upload", mock.Anything, mock.Anything, "image/png", []byte("x")).Return("", uploadErr)

	if _, err := ctrl.UploadPlayerPhoto(context.Background(), "p1", "image/png", []byte("x")); !errors.Is(err, uploadErr) {
		t.Errorf("expected the upload error, got %v", err)
	}
	mockDB.AssertNotCalled(t, "UpdatePlayer", mock.Anything, mock.Anything)
}

func TestUpdatePlayer_teamChangeRecomputes(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	// Dias moves to the Lions, so his goal changes sides.
	dias := *l.Dias
	dias.TeamID = l.Lions.ID
	dias.PhotoURL = "https://ignored.example.com/x.png"
	if err := ctrl.UpdatePlayer(ctx, &dias); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 3, 0)

	saved, err := tdb.DB.GetPlayer(ctx, l.Dias.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.PhotoURL != "" {
		t.Errorf("expected the photo not to be changed, got %s", saved.PhotoURL)
	}

	if err := ctrl.UpdatePlayer(ctx, &model.Player{ID: "no-such-player", Name: "x"}); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePlayer_recomputes(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	if err := ctrl.DeletePlayer(ctx, l.Bek.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertScore(t, tdb.DB, l.Match.ID, 1, 1)

	if err := ctrl.DeletePlayer(ctx, l.Bek.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTeam(t *testing.T) {
	ctrl, tdb := newTestController(t)
	ctx := context.Background()
	l := tdb.League

	if err := ctrl.DeleteTeam(ctx, l.Sharks.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tdb.DB.GetMatch(ctx, l.Match.ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected the match to be deleted with the team, got %v", err)
	}
	dias, err := tdb.DB.GetPlayer(ctx, l.Dias.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dias.IsLegionnaire() {
		t.Errorf("expected Dias to become a legionnaire, got %+v", dias)
	}
}

func TestCreateTeamAndPlayer(t *testing.T) {
	ctrl, _ := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.CreateTeam(ctx, " ", model.COLOR_RED); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	team, err := ctrl.CreateTeam(ctx, " Eagles ", model.COLOR_UNKNOWN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Name != "Eagles" || team.Color != model.COLOR_BLACK {
		t.Errorf("unexpected team %+v", team)
	}

	team.Color = model.COLOR_UNKNOWN
	if err := ctrl.UpdateTeam(ctx, team); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if _, err := ctrl.CreatePlayer(ctx, "", team.ID); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
	p, err := ctrl.CreatePlayer(ctx, "Nurs", team.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" || p.TeamID != team.ID {
		t.Errorf("unexpected player %+v", p)
	}
	if _, err := ctrl.CreatePlayer(ctx, "Ghost", "no-such-team"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
