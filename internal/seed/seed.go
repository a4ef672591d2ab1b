// Package seed loads the demo gallery used for local development and tests.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/pkg/password"
	"github.com/ayuu-te/studio-look/internal/store"
)

//go:embed seed.yaml
var demoData []byte

// User is an account with its plaintext demo password
type User struct {
	ID        string      `yaml:"id"`
	Email     string      `yaml:"email"`
	Password  string      `yaml:"password"`
	Role      models.Role `yaml:"role"`
	Name      string      `yaml:"name"`
	CreatedAt time.Time   `yaml:"createdAt"`
}

// Dataset is the content of a seed file
type Dataset struct {
	Users      []User             `yaml:"users"`
	Projects   []models.Project   `yaml:"projects"`
	Folders    []models.Folder    `yaml:"folders"`
	Photos     []models.Photo     `yaml:"photos"`
	Selections []models.Selection `yaml:"selections"`
	Comments   []models.Comment   `yaml:"comments"`
}

// Demo parses the embedded demo dataset
func Demo() (*Dataset, error) {
	return Parse(demoData)
}

// Parse decodes a seed file
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &ds, nil
}

// Load writes ds into an empty st in one transaction. Passwords are hashed
// at cost.
func Load(ctx context.Context, st *store.Store, ds *Dataset, cost int) error {
	users := make([]models.User, 0, len(ds.Users))
	for _, u := range ds.Users {
		if !u.Role.Valid() {
			return fmt.Errorf("seed user %s: invalid role %q", u.ID, u.Role)
		}
		hash, err := password.HashWithCost(u.Password, cost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
		users = append(users, models.User{
			ID:           u.ID,
			Email:        strings.ToLower(strings.TrimSpace(u.Email)),
			PasswordHash: hash,
			Role:         u.Role,
			Name:         u.Name,
			CreatedAt:    u.CreatedAt,
		})
	}

	err := st.Write(ctx, func(tx *store.Tx) error {
		for _, u := range users {
			if err := tx.InsertUser(u); err != nil {
				return fmt.Errorf("user %s: %w", u.ID, err)
			}
		}
		for _, p := range ds.Projects {
			if err := tx.InsertProject(p); err != nil {
				return fmt.Errorf("project %s: %w", p.ID, err)
			}
		}
		for _, f := range ds.Folders {
			if err := tx.InsertFolder(f); err != nil {
				return fmt.Errorf("folder %s: %w", f.ID, err)
			}
		}
		for _, p := range ds.Photos {
			if err := tx.InsertPhoto(p); err != nil {
				return fmt.Errorf("photo %s: %w", p.ID, err)
			}
		}
		for _, sel := range ds.Selections {
			if err := tx.PutSelection(sel); err != nil {
				return fmt.Errorf("selection %s: %w", sel.ID, err)
			}
		}
		for _, c := range ds.Comments {
			if err := tx.InsertComment(c); err != nil {
				return fmt.Errorf("comment %s: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	log.Info().
		Int("users", len(ds.Users)).
		Int("projects", len(ds.Projects)).
		Int("photos", len(ds.Photos)).
		Int("comments", len(ds.Comments)).
		Msg("Seed data loaded")
	return nil
}
