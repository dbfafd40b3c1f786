package stub

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/simplerentals/rentals-go/internal/model"
	"github.com/simplerentals/rentals-go/util/values"
)

// Store holds the stub's entities. All access is behind one mutex; the
// stub trades throughput for simple, observable semantics.
type Store struct {
	mu            sync.Mutex
	nextID        int64
	users         map[int64]model.User
	roommates     map[int64]model.Roommate
	listings      map[int64]model.Listing
	groups        map[int64]*model.Group
	invitations   map[int64]*model.Invitation
	conversations map[int64]*model.Conversation
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]model.User),
		roommates:     make(map[int64]model.Roommate),
		listings:      make(map[int64]model.Listing),
		groups:        make(map[int64]*model.Group),
		invitations:   make(map[int64]*model.Invitation),
		conversations: make(map[int64]*model.Conversation),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// ---- fixtures ----

func (s *Store) AddUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.id()
	s.users[u.ID] = u
	return u
}

func (s *Store) AddRoommate(rm model.Roommate) model.Roommate {
	s.mu.Lock()
	defer s.mu.Unlock()
	rm.ID = s.id()
	s.roommates[rm.ID] = rm

	user := s.users[rm.User.ID]
	user.RoommateProfile = &rm.ID
	s.users[user.ID] = user
	rm.User = user
	s.roommates[rm.ID] = rm
	return rm
}

func (s *Store) AddListing(l model.Listing) model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = s.id()
	s.listings[l.ID] = l
	return l
}

// AddGroup stores a group with the owner as implicit first member.
func (s *Store) AddGroup(g model.Group) model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.id()
	if g.Status == "" {
		g.Status = model.StatusOpen
	}
	if !g.HasMember(g.Owner.ID) {
		g.Members = append([]model.Roommate{g.Owner}, g.Members...)
	}
	stored := g
	s.groups[g.ID] = &stored
	return g
}

func (s *Store) AddInvitation(inv model.Invitation) model.Invitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = s.id()
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	stored := inv
	s.invitations[inv.ID] = &stored
	return inv
}

func (s *Store) AddConversation(c model.Conversation) model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	c.LastUpdated = time.Now()
	stored := c
	s.conversations[c.ID] = &stored
	return c
}

// ---- lookups ----

func (s *Store) User(id int64) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) Roommate(id int64) (model.Roommate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rm, ok := s.roommates[id]
	return rm, ok
}

func (s *Store) Roommates() []model.Roommate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Roommate{}
	for _, rm := range s.roommates {
		out = append(out, rm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) roommateByUser(userID int64) (model.Roommate, bool) {
	for _, rm := range s.roommates {
		if rm.User.ID == userID {
			return rm, true
		}
	}
	return model.Roommate{}, false
}

func (s *Store) Listing(id int64) (model.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	return l, ok
}

// SearchListings applies the /listings/viewAll filters. Ordering and
// pagination are ignored; the stub's data sets are small.
func (s *Store) SearchListings(search model.ListingSearch) []model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Listing{}
	for _, l := range s.listings {
		if search.City != "" && !strings.EqualFold(l.City, search.City) {
			continue
		}
		if search.PriceMin > 0 && l.Price < search.PriceMin {
			continue
		}
		if search.PriceMax > 0 && l.Price > search.PriceMax {
			continue
		}
		if search.Bedrooms > 0 && l.Bedrooms < search.Bedrooms {
			continue
		}
		if search.Bathrooms > 0 && l.Bathrooms < search.Bathrooms {
			continue
		}
		if search.PropertyType != "" && l.PropertyType != search.PropertyType {
			continue
		}
		if search.Owner != 0 && l.Owner.ID != search.Owner {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Group(id int64) (model.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		return model.Group{}, false
	}
	return copyGroup(g), true
}

func (s *Store) ListingGroups(listingID int64) []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Group
	for _, g := range s.groups {
		if g.Listing == listingID {
			out = append(out, copyGroup(g))
		}
	}
	sortGroups(out)
	return out
}

// ---- group workflow ----

func (s *Store) CreateGroup(listingID, actorUserID int64, form model.GroupForm) (model.Group, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[listingID]; !ok {
		return model.Group{}, values.NotFound, "Listing not found", errNotFound("listing")
	}
	owner, ok := s.roommateByUser(actorUserID)
	if !ok {
		return model.Group{}, values.NotAllowed, "A roommate profile is required to open a group", errForbidden()
	}
	if form.Status != model.StatusOpen && form.Status != model.StatusPrivate {
		return model.Group{}, values.Failed, "New groups must be open or private", errBadRequest()
	}

	g := &model.Group{
		ID:          s.id(),
		Name:        form.Name,
		Description: form.Description,
		MoveInDate:  form.MoveInDate,
		MoveInReady: form.MoveInReady,
		Status:      form.Status,
		Listing:     listingID,
		Owner:       owner,
		Members:     []model.Roommate{owner},
	}
	for _, memberID := range form.MemberIDs {
		if rm, ok := s.roommates[memberID]; ok && !g.HasMember(rm.ID) {
			g.Members = append(g.Members, rm)
		}
	}
	s.groups[g.ID] = g
	return copyGroup(g), values.Created, "Group created successfully", nil
}

func (s *Store) EditGroup(groupID, actorUserID int64, form model.GroupForm) (model.Group, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return model.Group{}, values.NotFound, "Group not found", errNotFound("group")
	}
	if g.Owner.User.ID != actorUserID {
		return model.Group{}, values.NotAllowed, "Only the group owner may edit the group", errForbidden()
	}

	if form.Name != "" {
		g.Name = form.Name
	}
	if form.Description != "" {
		g.Description = form.Description
	}
	if form.MoveInDate != "" {
		g.MoveInDate = form.MoveInDate
	}
	if form.Status != "" {
		if !form.Status.Valid() {
			return model.Group{}, values.Failed, "Unknown group status", errBadRequest()
		}
		switch {
		case form.Status == model.StatusSent:
			if !g.Status.CanTransition(model.StatusSent) {
				return model.Group{}, values.Failed, "Group has already applied", errBadRequest()
			}
		case form.Status.PreApplication():
			if !g.Status.PreApplication() {
				return model.Group{}, values.Failed, "Applications cannot be withdrawn", errBadRequest()
			}
		default:
			return model.Group{}, values.NotAllowed, "Review statuses are set by the listing owner", errForbidden()
		}
		g.Status = form.Status
	}
	return copyGroup(g), values.Success, "Group updated", nil
}

func (s *Store) ManageGroup(groupID, actorUserID int64, status model.GroupStatus) (model.Group, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return model.Group{}, values.NotFound, "Group not found", errNotFound("group")
	}
	listing := s.listings[g.Listing]
	if listing.Owner.ID != actorUserID {
		return model.Group{}, values.NotAuthorised, "Only the listing owner may manage applications", errUnauthorized()
	}
	if !status.ManageTarget() {
		return model.Group{}, values.Failed, "Not a manageable status", errBadRequest()
	}
	if !g.Status.CanTransition(status) {
		return model.Group{}, values.Failed, "Group is not under review", errBadRequest()
	}
	g.Status = status
	return copyGroup(g), values.Success, "Group status updated", nil
}

func (s *Store) JoinGroup(groupID, actorUserID int64) (model.Group, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return model.Group{}, values.NotFound, "Group not found", errNotFound("group")
	}
	rm, ok := s.roommateByUser(actorUserID)
	if !ok {
		return model.Group{}, values.NotAllowed, "A roommate profile is required to join a group", errForbidden()
	}
	if g.HasMember(rm.ID) {
		return model.Group{}, values.Failed, "You are already a member of this group", errBadRequest()
	}
	if g.Status != model.StatusOpen {
		return model.Group{}, values.Failed, "Group is not open", errBadRequest()
	}
	if listing, ok := s.listings[g.Listing]; ok && listing.Owner.ID == actorUserID {
		return model.Group{}, values.NotAllowed, "Listing owners cannot join groups on their own listing", errForbidden()
	}

	g.Members = append(g.Members, rm)
	return copyGroup(g), values.Success, "Joined group", nil
}

func (s *Store) LeaveGroup(groupID, actorUserID int64) (model.Group, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return model.Group{}, values.NotFound, "Group not found", errNotFound("group")
	}
	rm, ok := s.roommateByUser(actorUserID)
	if !ok || !g.HasMember(rm.ID) {
		return model.Group{}, values.Failed, "You are not a member of this group", errBadRequest()
	}
	if g.Owner.ID == rm.ID {
		return model.Group{}, values.Failed, "The owner must delete the group instead of leaving", errBadRequest()
	}

	members := g.Members[:0]
	for _, m := range g.Members {
		if m.ID != rm.ID {
			members = append(members, m)
		}
	}
	g.Members = members
	return copyGroup(g), values.Success, "Left group", nil
}

func (s *Store) DeleteGroup(groupID, actorUserID int64) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return values.NotFound, "Group not found", errNotFound("group")
	}
	if g.Owner.User.ID != actorUserID {
		return values.NotAllowed, "Only the group owner may delete the group", errForbidden()
	}
	delete(s.groups, groupID)
	for id, inv := range s.invitations {
		if inv.Group == groupID {
			delete(s.invitations, id)
		}
	}
	return values.Success, "Group deleted", nil
}

func (s *Store) Applications(actorUserID int64) []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	rm, ok := s.roommateByUser(actorUserID)
	if !ok {
		return nil
	}
	var out []model.Group
	for _, g := range s.groups {
		if g.HasMember(rm.ID) {
			out = append(out, copyGroup(g))
		}
	}
	sortGroups(out)
	return out
}

func (s *Store) ManagedApplications(actorUserID int64) []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Group
	for _, g := range s.groups {
		if listing, ok := s.listings[g.Listing]; ok && listing.Owner.ID == actorUserID {
			out = append(out, copyGroup(g))
		}
	}
	sortGroups(out)
	return out
}

// ---- invitations ----

func (s *Store) Invitations(actorUserID int64) model.Inbox {
	s.mu.Lock()
	defer s.mu.Unlock()

	var inbox model.Inbox
	rm, hasProfile := s.roommateByUser(actorUserID)
	for _, inv := range s.invitations {
		if hasProfile && inv.InvitedUser == rm.ID {
			inbox.Received = append(inbox.Received, *inv)
		}
		if sender, ok := s.roommates[inv.InvitedBy]; ok && sender.User.ID == actorUserID && inv.InvitedUser != rm.ID {
			inbox.Sent = append(inbox.Sent, *inv)
		}
	}
	sortInvitations(inbox.Received)
	sortInvitations(inbox.Sent)
	return inbox
}

func (s *Store) CreateInvitation(groupID, actorUserID, invitedRoommateID int64) (model.Invitation, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[groupID]
	if !ok {
		return model.Invitation{}, values.NotFound, "Group not found", errNotFound("group")
	}
	sender, ok := s.roommateByUser(actorUserID)
	if !ok || !g.HasMember(sender.ID) {
		return model.Invitation{}, values.NotAllowed, "Only group members may invite", errForbidden()
	}
	invited, ok := s.roommates[invitedRoommateID]
	if !ok {
		return model.Invitation{}, values.NotFound, "Roommate not found", errNotFound("roommate")
	}
	if g.HasMember(invited.ID) {
		return model.Invitation{}, values.Failed, "Roommate is already a member", errBadRequest()
	}

	inv := &model.Invitation{
		ID:               s.id(),
		Group:            groupID,
		GroupName:        g.Name,
		InvitedBy:        sender.ID,
		InvitedByEmail:   sender.User.Email,
		InvitedUser:      invited.ID,
		InvitedUserEmail: invited.User.Email,
		CreatedAt:        time.Now(),
	}
	s.invitations[inv.ID] = inv
	return *inv, values.Created, "Invitation sent", nil
}

func (s *Store) UpdateInvitation(invitationID, actorUserID int64, accepted bool) (model.Invitation, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[invitationID]
	if !ok {
		return model.Invitation{}, values.NotFound, "Invitation not found", errNotFound("invitation")
	}
	rm, ok := s.roommateByUser(actorUserID)
	if !ok || inv.InvitedUser != rm.ID {
		return model.Invitation{}, values.NotAllowed, "Only the invited roommate may respond", errForbidden()
	}
	if inv.Accepted != nil {
		return model.Invitation{}, values.NotAllowed, "Invitation has already been answered", errForbidden()
	}

	inv.Accepted = &accepted
	return *inv, values.Success, "Invitation updated", nil
}

func (s *Store) DeleteInvitation(invitationID, actorUserID int64) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[invitationID]
	if !ok {
		return values.NotFound, "Invitation not found", errNotFound("invitation")
	}
	if rm, ok := s.roommateByUser(actorUserID); ok && inv.InvitedUser == rm.ID {
		return values.NotAllowed, "Recipients cannot delete their invitations", errForbidden()
	}
	delete(s.invitations, invitationID)
	return values.Success, "Invitation deleted", nil
}

// ---- conversations ----

func (s *Store) Conversations(actorUserID int64) []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Conversation
	for _, c := range s.conversations {
		if containsID(c.Participants, actorUserID) {
			out = append(out, copyConversation(c, false))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Conversation(conversationID, actorUserID int64) (model.Conversation, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[conversationID]
	if !ok {
		return model.Conversation{}, values.NotFound, "Conversation not found", errNotFound("conversation")
	}
	if !containsID(c.Participants, actorUserID) {
		return model.Conversation{}, values.NotAllowed, "Not a participant", errForbidden()
	}
	return copyConversation(c, true), values.Success, "", nil
}

func (s *Store) StartConversation(listingID, actorUserID int64, participants []int64) (model.Conversation, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return model.Conversation{}, values.NotFound, "Listing not found", errNotFound("listing")
	}

	if len(participants) == 0 {
		if listing.Owner.ID == actorUserID {
			return model.Conversation{}, values.Failed, "Cannot start a conversation with yourself", errBadRequest()
		}
		participants = []int64{actorUserID, listing.Owner.ID}
	} else if !containsID(participants, actorUserID) {
		participants = append(participants, actorUserID)
	}

	probe := model.Conversation{Participants: participants}
	for _, c := range s.conversations {
		if c.Listing.ID == listingID && c.HasParticipants(probe.Participants) {
			return model.Conversation{}, values.Failed, "Conversation already exists", errBadRequest()
		}
	}

	c := &model.Conversation{
		ID:           s.id(),
		Listing:      listing,
		Participants: participants,
		LastUpdated:  time.Now(),
	}
	s.conversations[c.ID] = c
	return copyConversation(c, true), values.Created, "Conversation started", nil
}

func (s *Store) SendMessage(conversationID, actorUserID int64, content string) (model.Message, string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return model.Message{}, values.NotFound, "Conversation not found", errNotFound("conversation")
	}
	if !containsID(c.Participants, actorUserID) {
		return model.Message{}, values.NotAllowed, "Not a participant", errForbidden()
	}
	if content == "" {
		return model.Message{}, values.Failed, "Message content is empty", errBadRequest()
	}

	msg := model.Message{
		ID:        s.id(),
		Sender:    s.users[actorUserID],
		Content:   content,
		CreatedAt: time.Now(),
	}
	c.Messages = append(c.Messages, msg)
	c.LastUpdated = msg.CreatedAt
	return msg, values.Created, "Message sent", nil
}

func (s *Store) LeaveConversation(conversationID, actorUserID int64) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return values.NotFound, "Conversation not found", errNotFound("conversation")
	}
	if !containsID(c.Participants, actorUserID) {
		return values.Failed, "Not a participant", errBadRequest()
	}

	participants := c.Participants[:0]
	for _, id := range c.Participants {
		if id != actorUserID {
			participants = append(participants, id)
		}
	}
	c.Participants = participants
	if len(c.Participants) == 0 {
		delete(s.conversations, conversationID)
	}
	return values.Success, "Left conversation", nil
}

func (s *Store) DeleteConversation(conversationID, actorUserID int64) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.conversations[conversationID]
	if !ok {
		return values.NotFound, "Conversation not found", errNotFound("conversation")
	}
	if !containsID(c.Participants, actorUserID) {
		return values.NotAllowed, "Not a participant", errForbidden()
	}
	delete(s.conversations, conversationID)
	return values.Success, "Conversation deleted", nil
}

// ---- helpers ----

func copyGroup(g *model.Group) model.Group {
	out := *g
	out.Members = append([]model.Roommate(nil), g.Members...)
	return out
}

func copyConversation(c *model.Conversation, withMessages bool) model.Conversation {
	out := *c
	out.Participants = append([]int64(nil), c.Participants...)
	if withMessages {
		out.Messages = append([]model.Message(nil), c.Messages...)
	} else {
		out.Messages = nil
	}
	return out
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func sortGroups(groups []model.Group) {
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
}

func sortInvitations(invs []model.Invitation) {
	sort.Slice(invs, func(i, j int) bool { return invs[i].ID < invs[j].ID })
}

func errNotFound(entity string) error { return fmt.Errorf("%s not found", entity) }
func errForbidden() error { return fmt.Errorf("forbidden") }
func errUnauthorized() error { return fmt.Errorf("unauthorized") }
func errBadRequest() error { return fmt.Errorf("bad request") }
