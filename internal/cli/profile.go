package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/iudanet/drfriend/internal/payload"
)

// profileUpdate содержит изменяемые поля профиля, nil означает "не менять"
type profileUpdate struct {
	Name      *string
	Email     *string
	Phone     *string
	ImagePath *string
}

// runProfileShow печатает профиль пользователя
func (c *Cli) runProfileShow(ctx context.Context) error {
	p, err := c.profile.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if p.IsEmpty() {
		c.io.Println("Profile is empty.")
		c.io.Println("Use 'drfriend profile set --name NAME' to fill it in.")
		return nil
	}

	c.io.Printf("Name:  %s\n", valueOr(p.Name, "-"))
	c.io.Printf("Email: %s\n", valueOr(p.Email, "-"))
	c.io.Printf("Phone: %s\n", valueOr(p.Phone, "-"))
	if p.Image == "" {
		c.io.Println("Image: -")
		return nil
	}
	data, mimeType, err := payload.Decode(p.Image)
	if err != nil {
		c.io.Println("Image: corrupted")
		return nil
	}
	c.io.Printf("Image: %s, %s\n", mimeType, humanize.IBytes(uint64(len(data))))
	return nil
}

// runProfileSet изменяет переданные поля профиля, остальные сохраняются
func (c *Cli) runProfileSet(ctx context.Context, upd profileUpdate) error {
	p, err := c.profile.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		p.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.Phone != nil {
		p.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.ImagePath != nil {
		p.Image = ""
		if path := *upd.ImagePath; path != "" {
			content, err := afero.ReadFile(c.fs, path)
			if err != nil {
				return fmt.Errorf("failed to read image %s: %w", path, err)
			}
			p.Image = payload.Encode(content, payload.DetectMime(path, content))
		}
	}

	if err := c.profile.Save(ctx, p); err != nil {
		return err
	}

	c.io.Println("Profile saved.")
	return nil
}

// runProfileClear удаляет профиль, записи не затрагиваются
func (c *Cli) runProfileClear(ctx context.Context, yes bool) error {
	if err := c.confirm("Clear profile?", yes); err != nil {
		return err
	}
	if err := c.profile.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	c.io.Println("Profile cleared.")
	return nil
}
