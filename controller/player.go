package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"strings"

	"github.com/HFC06Atyrau/HFC/model"
	"github.com/HFC06Atyrau/HFC/storage"
)

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) CreatePlayer(ctx context.Context, name, teamID string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalid)
	}

	p := &model.Player{Name: name, TeamID: teamID}
	if err := c.db.AddPlayer(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *controller) UpdatePlayer(ctx context.Context, p *model.Player) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalid)
	}

	existing, err := c.db.GetPlayer(ctx, p.ID)
	if err != nil {
		return err
	}
	// The photo is only changed through UploadPlayerPhoto.
	p.PhotoURL = existing.PhotoURL
	p.Created = existing.Created

	if err := c.db.UpdatePlayer(ctx, p); err != nil {
		return err
	}
	if existing.TeamID == p.TeamID {
		return nil
	}

	affected, err := c.affectedMatches(ctx, p.ID)
	if err != nil {
		return err
	}
	return c.recomputeMatches(ctx, affected)
}

func (c *controller) DeletePlayer(ctx context.Context, id string) error {
	p, err := c.db.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	affected, err := c.affectedMatches(ctx, id)
	if err != nil {
		return err
	}
	if err := c.db.DeletePlayer(ctx, id); err != nil {
		return err
	}

	if p.PhotoURL != "" && c.storage != nil {
		if err := c.storage.Delete(ctx, storage.KeyFromURL(p.PhotoURL)); err != nil {
			log.Printf("error deleting photo of removed player %s: %v", id, err)
		}
	}
	return c.recomputeMatches(ctx, affected)
}

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

func (c *controller) UploadPlayerPhoto(ctx context.Context, playerID, contentType string, data []byte) (*model.Player, error) {
	if c.storage == nil {
		return nil, ErrStorageDisabled
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: photo is empty", ErrInvalid)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: bad content type '%s'", ErrInvalid, contentType)
	}
	ext, found := photoExtensions[mediaType]
	if !found {
		return nil, fmt.Errorf("%w: unsupported photo type '%s'", ErrInvalid, mediaType)
	}

	p, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s-%d.%s", p.ID, c.clock.Now().UnixMilli(), ext)
	url, err := c.storage.Upload(ctx, key, mediaType, data)
	if err != nil {
		return nil, err
	}

	old := p.PhotoURL
	p.PhotoURL = url
	if err := c.db.UpdatePlayer(ctx, p); err != nil {
		return nil, err
	}

	if old != "" && old != url {
		if err := c.storage.Delete(ctx, storage.KeyFromURL(old)); err != nil {
			log.Printf("error deleting old photo of player %s: %v", p.ID, err)
		}
	}
	return p, nil
}

func (c *controller) DeletePlayerPhoto(ctx context.Context, playerID string) error {
	if c.storage == nil {
		return ErrStorageDisabled
	}

	p, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if p.PhotoURL == "" {
		return nil
	}

	key := storage.KeyFromURL(p.PhotoURL)
	if key == "" {
		return errors.New("error finding the storage key of the photo")
	}
	if err := c.storage.Delete(ctx, key); err != nil {
		return err
	}

	p.PhotoURL = ""
	return c.db.UpdatePlayer(ctx, p)
}
