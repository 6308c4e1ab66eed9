package items

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultRootName = "Root"

const copyPrefix = "Copy of "

// maxIDAttempts bounds retries of an IDGenerator that keeps returning issued ids.
const maxIDAttempts = 1000

var errIDsExhausted = errors.New("id generator keeps returning issued ids")

// CountObserver is notified with the number of items after every successful mutation.
type CountObserver func(count int)

// Store owns every item of the tree. Mutations are serialized and validated
// in full before anything is applied, so a rejected call leaves no trace.
type Store struct {
	mu sync.RWMutex

	items  map[string]*Item
	order  []string
	issued map[string]struct{}
	rootID string

	rootName        string
	newID           IDGenerator
	now             func() time.Time
	logger          *zap.Logger
	observer        CountObserver
	touchOnMutation bool
}

type StoreOption func(*Store)

func WithRootName(name string) StoreOption {
	return func(s *Store) {
		s.rootName = name
	}
}

func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		s.newID = g
	}
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithObserver(o CountObserver) StoreOption {
	return func(s *Store) {
		s.observer = o
	}
}

// WithTouchOnMutation makes rename and move refresh LastModified.
func WithTouchOnMutation(v bool) StoreOption {
	return func(s *Store) {
		s.touchOnMutation = v
	}
}

// NewStore returns a store holding just the root folder.
func NewStore(o ...StoreOption) *Store {
	s := newEmptyStore(o...)
	root := &Item{
		ID:           RootID,
		Name:         s.rootName,
		Kind:         KindFolder,
		LastModified: s.now(),
	}
	s.insertLocked(root)
	s.rootID = root.ID
	return s
}

func newEmptyStore(o ...StoreOption) *Store {
	s := &Store{
		items:    make(map[string]*Item),
		issued:   make(map[string]struct{}),
		rootName: DefaultRootName,
		newID:    newRandomID,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range o {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

func (s *Store) RootID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootID
}

func (s *Store) Root() Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.items[s.rootID]
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns a snapshot of every item in insertion order.
func (s *Store) All() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, *s.items[id])
	}
	return all
}

// Get looks an item up by id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// ListChildren returns the items directly inside folderID in insertion order.
// An unknown folder has no children.
func (s *Store) ListChildren(folderID string) []Item {
	if folderID == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var children []Item
	for _, id := range s.order {
		if item := s.items[id]; item.ParentID == folderID {
			children = append(children, *item)
		}
	}
	return children
}

// BreadcrumbPath lists the folders from the root down to folderID inclusive.
// An unknown id gives an empty path. The walk is bounded by the number of
// items; running past that bound means a parent cycle and yields ErrCorruptTree.
func (s *Store) BreadcrumbPath(folderID string) ([]Crumb, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var path []Crumb
	currentID := folderID
	for steps := 0; currentID != ""; steps++ {
		if steps >= len(s.items) {
			return nil, opError("breadcrumbs", folderID, ErrCorruptTree)
		}
		item, ok := s.items[currentID]
		if !ok {
			break
		}
		path = append(path, Crumb{ID: item.ID, Name: item.Name})
		currentID = item.ParentID
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// CreateItem adds a file or folder under parentID and returns its new id.
// Files start with size 0 unless WithSize says otherwise.
func (s *Store) CreateItem(name string, kind Kind, parentID string, o ...ItemOption) (string, error) {
	const op = "create"
	if blank(name) {
		return "", opError(op, "", ErrEmptyName)
	}
	if !kind.Valid() {
		return "", opError(op, "", fmt.Errorf("unknown item kind %q", kind))
	}

	s.mu.Lock()
	if err := s.folderLocked(op, parentID); err != nil {
		s.mu.Unlock()
		return "", err
	}
	item := &Item{
		Name:         name,
		Kind:         kind,
		ParentID:     parentID,
		LastModified: s.now(),
	}
	if kind == KindFile {
		item.Extension = ExtensionOf(name)
	}
	for _, opt := range o {
		opt(item)
	}
	if item.Size < 0 {
		s.mu.Unlock()
		return "", opError(op, "", ErrInvalidSize)
	}
	id, err := s.issueIDLocked(kind)
	if err != nil {
		s.mu.Unlock()
		return "", opError(op, "", err)
	}
	item.ID = id
	s.insertLocked(item)
	count := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("item created",
		zap.String("id", id),
		zap.String("kind", string(kind)),
		zap.String("parent", parentID))
	s.notify(count)
	return id, nil
}

// RenameItem changes the name of an item. Files get their extension re-derived,
// so renaming "a.txt" to "a" leaves the file without an extension.
func (s *Store) RenameItem(id, newName string) error {
	const op = "rename"
	if blank(newName) {
		return opError(op, id, ErrEmptyName)
	}
	s.mu.Lock()
	item, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return opError(op, id, ErrNotFound)
	}
	item.Name = newName
	if item.Kind == KindFile {
		item.Extension = ExtensionOf(newName)
	}
	if s.touchOnMutation {
		item.LastModified = s.now()
	}
	count := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("item renamed", zap.String("id", id), zap.String("name", newName))
	s.notify(count)
	return nil
}

// MoveItems re-parents ids under targetFolderID. It is rejected as a whole when
// the target is not an existing folder, is one of ids, or lies below any of them.
func (s *Store) MoveItems(ids []string, targetFolderID string) error {
	const op = "move"
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	s.mu.Lock()
	if err := s.folderLocked(op, targetFolderID); err != nil {
		s.mu.Unlock()
		return err
	}
	moving := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.items[id]; !ok {
			s.mu.Unlock()
			return opError(op, id, ErrNotFound)
		}
		moving[id] = struct{}{}
	}
	if _, ok := moving[targetFolderID]; ok {
		s.mu.Unlock()
		return opError(op, targetFolderID, ErrCyclicMove)
	}
	if err := s.checkAncestorsLocked(targetFolderID, moving); err != nil {
		s.mu.Unlock()
		return err
	}
	var now time.Time
	if s.touchOnMutation {
		now = s.now()
	}
	for _, id := range ids {
		item := s.items[id]
		item.ParentID = targetFolderID
		if s.touchOnMutation {
			item.LastModified = now
		}
	}
	count := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("items moved", zap.Strings("ids", ids), zap.String("target", targetFolderID))
	s.notify(count)
	return nil
}

// checkAncestorsLocked walks up from folderID and fails if it meets any id of moving.
func (s *Store) checkAncestorsLocked(folderID string, moving map[string]struct{}) error {
	currentID := s.items[folderID].ParentID
	for steps := 0; currentID != ""; steps++ {
		if steps >= len(s.items) {
			return opError("move", folderID, ErrCorruptTree)
		}
		if _, ok := moving[currentID]; ok {
			return opError("move", currentID, ErrCyclicMove)
		}
		parent, ok := s.items[currentID]
		if !ok {
			return nil
		}
		currentID = parent.ParentID
	}
	return nil
}

// DeleteItems removes ids together with all of their descendants in one step.
func (s *Store) DeleteItems(ids []string) error {
	const op = "delete"
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	s.mu.Lock()
	for _, id := range ids {
		if _, ok := s.items[id]; !ok {
			s.mu.Unlock()
			return opError(op, id, ErrNotFound)
		}
		if id == s.rootID {
			s.mu.Unlock()
			return opError(op, id, ErrForbiddenRootDeletion)
		}
	}
	doomed := s.descendantClosureLocked(ids)
	kept := s.order[:0]
	for _, id := range s.order {
		if _, ok := doomed[id]; ok {
			delete(s.items, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	count := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("items deleted", zap.Strings("ids", ids), zap.Int("removed", len(doomed)))
	s.notify(count)
	return nil
}

// descendantClosureLocked returns ids plus everything below them.
func (s *Store) descendantClosureLocked(ids []string) map[string]struct{} {
	children := make(map[string][]string, len(s.items))
	for _, id := range s.order {
		parentID := s.items[id].ParentID
		if parentID != "" {
			children[parentID] = append(children[parentID], id)
		}
	}
	closure := make(map[string]struct{}, len(ids))
	queue := append([]string(nil), ids...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, seen := closure[id]; seen {
			continue
		}
		closure[id] = struct{}{}
		queue = append(queue, children[id]...)
	}
	return closure
}

// CopyItemsInto places a shallow duplicate of every id into targetFolderID
// and returns the new ids in the same order. Folder contents are not copied.
func (s *Store) CopyItemsInto(ids []string, targetFolderID string) ([]string, error) {
	const op = "copy"
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	s.mu.Lock()
	if err := s.folderLocked(op, targetFolderID); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	sources := make([]*Item, 0, len(ids))
	for _, id := range ids {
		item, ok := s.items[id]
		if !ok {
			s.mu.Unlock()
			return nil, opError(op, id, ErrNotFound)
		}
		sources = append(sources, item)
	}
	newIDs := make([]string, 0, len(sources))
	now := s.now()
	copies := make([]*Item, 0, len(sources))
	for _, src := range sources {
		id, err := s.issueIDLocked(src.Kind)
		if err != nil {
			for _, issued := range newIDs {
				delete(s.issued, issued)
			}
			s.mu.Unlock()
			return nil, opError(op, src.ID, err)
		}
		dup := *src
		dup.ID = id
		dup.Name = copyPrefix + src.Name
		dup.ParentID = targetFolderID
		dup.LastModified = now
		copies = append(copies, &dup)
		newIDs = append(newIDs, id)
	}
	for _, dup := range copies {
		s.insertLocked(dup)
	}
	count := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("items copied",
		zap.Strings("ids", ids),
		zap.Strings("copies", newIDs),
		zap.String("target", targetFolderID))
	s.notify(count)
	return newIDs, nil
}

func (s *Store) folderLocked(op, id string) error {
	item, ok := s.items[id]
	if !ok {
		return opError(op, id, ErrNotFound)
	}
	if item.Kind != KindFolder {
		return opError(op, id, ErrInvalidTarget)
	}
	return nil
}

func (s *Store) issueIDLocked(kind Kind) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID(kind)
		if id == "" {
			continue
		}
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id, nil
		}
	}
	return "", errIDsExhausted
}

func (s *Store) insertLocked(item *Item) {
	s.items[item.ID] = item
	s.issued[item.ID] = struct{}{}
	s.order = append(s.order, item.ID)
}

func (s *Store) notify(count int) {
	if s.observer != nil {
		s.observer(count)
	}
}

func uniqueIDs(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
