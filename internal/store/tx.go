package store

import (
	"errors"

	"github.com/ayuu-te/studio-look/internal/models"
)

var (
	// ErrFolderMismatch is returned when a photo references a folder of another project
	ErrFolderMismatch = errors.New("folder does not belong to project")
	// ErrPhotoMismatch is returned when a selection names a photo outside its project
	ErrPhotoMismatch = errors.New("photo does not belong to project")
	// ErrInvalidParent is returned when a reply's parent is missing, on another photo or itself a reply
	ErrInvalidParent = errors.New("invalid parent comment")
)

// Tx is a view of the store bound to one Read or Write call.
// Getters return copies; callers never hold references into the store.
type Tx struct {
	s        *Store
	writable bool
}

func (tx *Tx) checkWritable() error {
	if !tx.writable {
		return ErrReadOnly
	}
	return nil
}

// Users

func (tx *Tx) User(id string) (models.User, bool) {
	u, ok := tx.s.users[id]
	return u, ok
}

func (tx *Tx) UserByEmail(email string) (models.User, bool) {
	id, ok := tx.s.userByEmail[email]
	if !ok {
		return models.User{}, false
	}
	return tx.User(id)
}

func (tx *Tx) InsertUser(u models.User) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := tx.s.users[u.ID]; ok {
		return ErrDuplicateID
	}
	if _, ok := tx.s.userByEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}
	tx.s.users[u.ID] = u
	tx.s.userByEmail[u.Email] = u.ID
	tx.s.userOrder = append(tx.s.userOrder, u.ID)
	return nil
}

// Projects

func (tx *Tx) Project(id string) (models.Project, bool) {
	p, ok := tx.s.projects[id]
	return p, ok
}

func (tx *Tx) ProjectByToken(token string) (models.Project, bool) {
	id, ok := tx.s.projectByToken[token]
	if !ok {
		return models.Project{}, false
	}
	return tx.Project(id)
}

// ProjectsByOwner returns the owner's projects in creation order
func (tx *Tx) ProjectsByOwner(ownerID string) []models.Project {
	var out []models.Project
	for _, id := range tx.s.projectOrder {
		if p := tx.s.projects[id]; p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

func (tx *Tx) InsertProject(p models.Project) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := tx.s.projects[p.ID]; ok {
		return ErrDuplicateID
	}
	if _, ok := tx.s.projectByToken[p.ShareToken]; ok {
		return ErrDuplicateShareToken
	}
	tx.s.projects[p.ID] = p
	tx.s.projectByToken[p.ShareToken] = p.ID
	tx.s.projectOrder = append(tx.s.projectOrder, p.ID)
	return nil
}

// UpdateProject replaces a stored project. The share token is immutable.
func (tx *Tx) UpdateProject(p models.Project) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	old, ok := tx.s.projects[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.ShareToken = old.ShareToken
	tx.s.projects[p.ID] = p
	return nil
}

// Folders

func (tx *Tx) Folder(id string) (models.Folder, bool) {
	f, ok := tx.s.folders[id]
	return f, ok
}

func (tx *Tx) FoldersByProject(projectID string) []models.Folder {
	out := []models.Folder{}
	for _, id := range tx.s.folderOrder {
		if f := tx.s.folders[id]; f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	return out
}

func (tx *Tx) InsertFolder(f models.Folder) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := tx.s.projects[f.ProjectID]; !ok {
		return ErrNotFound
	}
	if _, ok := tx.s.folders[f.ID]; ok {
		return ErrDuplicateID
	}
	tx.s.folders[f.ID] = f
	tx.s.folderOrder = append(tx.s.folderOrder, f.ID)
	return nil
}

// Photos

func (tx *Tx) Photo(id string) (models.Photo, bool) {
	p, ok := tx.s.photos[id]
	if !ok {
		return models.Photo{}, false
	}
	return clonePhoto(p), true
}

func (tx *Tx) PhotosByProject(projectID string) []models.Photo {
	out := []models.Photo{}
	for _, id := range tx.s.photoOrder {
		if p := tx.s.photos[id]; p.ProjectID == projectID {
			out = append(out, clonePhoto(p))
		}
	}
	return out
}

// InsertPhoto stores a photo record whose folder must belong to the same project
func (tx *Tx) InsertPhoto(p models.Photo) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := tx.s.projects[p.ProjectID]; !ok {
		return ErrNotFound
	}
	folder, ok := tx.s.folders[p.FolderID]
	if !ok || folder.ProjectID != p.ProjectID {
		return ErrFolderMismatch
	}
	if _, ok := tx.s.photos[p.ID]; ok {
		return ErrDuplicateID
	}
	tx.s.photos[p.ID] = clonePhoto(p)
	tx.s.photoOrder = append(tx.s.photoOrder, p.ID)
	return nil
}

func clonePhoto(p models.Photo) models.Photo {
	if p.Metadata != nil {
		m := *p.Metadata
		p.Metadata = &m
	}
	return p
}

// Selections

func (tx *Tx) Selection(projectID, photoID string) (models.Selection, bool) {
	sel, ok := tx.s.selections[selectionKey{projectID: projectID, photoID: photoID}]
	return sel, ok
}

// SelectionsByProject returns stored selections following the project's photo order
func (tx *Tx) SelectionsByProject(projectID string) []models.Selection {
	out := []models.Selection{}
	for _, id := range tx.s.photoOrder {
		if tx.s.photos[id].ProjectID != projectID {
			continue
		}
		if sel, ok := tx.s.selections[selectionKey{projectID: projectID, photoID: id}]; ok {
			out = append(out, sel)
		}
	}
	return out
}

// PutSelection creates or replaces the record for (projectID, photoID)
func (tx *Tx) PutSelection(sel models.Selection) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if sel.Status == models.SelectionPending {
		return errors.New("pending selections are not stored")
	}
	if photo, ok := tx.s.photos[sel.PhotoID]; !ok || photo.ProjectID != sel.ProjectID {
		return ErrPhotoMismatch
	}
	tx.s.selections[selectionKey{projectID: sel.ProjectID, photoID: sel.PhotoID}] = sel
	return nil
}

// DeleteSelection removes the record and reports whether one existed
func (tx *Tx) DeleteSelection(projectID, photoID string) (bool, error) {
	if err := tx.checkWritable(); err != nil {
		return false, err
	}
	key := selectionKey{projectID: projectID, photoID: photoID}
	if _, ok := tx.s.selections[key]; !ok {
		return false, nil
	}
	delete(tx.s.selections, key)
	return true, nil
}

// Comments

func (tx *Tx) Comment(id string) (models.Comment, bool) {
	c, ok := tx.s.comments[id]
	return c, ok
}

func (tx *Tx) CommentsByPhoto(photoID string) []models.Comment {
	return tx.filterComments(func(c models.Comment) bool { return c.PhotoID == photoID })
}

func (tx *Tx) CommentsByProject(projectID string) []models.Comment {
	return tx.filterComments(func(c models.Comment) bool { return c.ProjectID == projectID })
}

// Replies returns direct replies of a comment
func (tx *Tx) Replies(parentID string) []models.Comment {
	return tx.filterComments(func(c models.Comment) bool { return c.ParentID == parentID })
}

func (tx *Tx) filterComments(keep func(models.Comment) bool) []models.Comment {
	out := []models.Comment{}
	for _, id := range tx.s.commentOrder {
		if c := tx.s.comments[id]; keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (tx *Tx) InsertComment(c models.Comment) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := tx.s.comments[c.ID]; ok {
		return ErrDuplicateID
	}
	if c.IsReply() {
		parent, ok := tx.s.comments[c.ParentID]
		if !ok || parent.PhotoID != c.PhotoID || parent.IsReply() {
			return ErrInvalidParent
		}
	}
	tx.s.comments[c.ID] = c
	tx.s.commentOrder = append(tx.s.commentOrder, c.ID)
	return nil
}

func (tx *Tx) UpdateComment(c models.Comment) error {
	if err := tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := tx.s.comments[c.ID]; !ok {
		return ErrNotFound
	}
	tx.s.comments[c.ID] = c
	return nil
}

// DeleteComments removes the given ids and returns how many existed
func (tx *Tx) DeleteComments(ids ...string) (int, error) {
	if err := tx.checkWritable(); err != nil {
		return 0, err
	}
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := tx.s.comments[id]; ok {
			doomed[id] = struct{}{}
			delete(tx.s.comments, id)
		}
	}
	if len(doomed) == 0 {
		return 0, nil
	}
	kept := tx.s.commentOrder[:0]
	for _, id := range tx.s.commentOrder {
		if _, gone := doomed[id]; !gone {
			kept = append(kept, id)
		}
	}
	tx.s.commentOrder = kept
	return len(doomed), nil
}
