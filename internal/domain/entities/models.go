package entities

// Identifiable is implemented by every entity cached per session.
type Identifiable interface {
	GetID() string
}

// Codemark is a code comment anchored to one or more markers.
type Codemark struct {
	ID        string
	TeamID    string
	StreamID  string
	PostID    string
	Text      string
	MarkerIDs []string
}

func (c Codemark) GetID() string { return c.ID }

// Marker pins a codemark to a location in a file.
type Marker struct {
	ID         string
	CodemarkID string
	FileStream string
	CommitSHA  string
	Line       int
}

func (m Marker) GetID() string { return m.ID }

// Post is a message in a stream.
type Post struct {
	ID       string
	StreamID string
	ParentID string
	Text     string
	AuthorID string
}

func (p Post) GetID() string { return p.ID }

// Repo is a repository known to the team.
type Repo struct {
	ID      string
	TeamID  string
	Name    string
	Remotes []string
}

func (r Repo) GetID() string { return r.ID }

// Stream is a channel, direct conversation or file stream.
type Stream struct {
	ID     string
	TeamID string
	Type   string
	Name   string
	File   string
	RepoID string
}

func (s Stream) GetID() string { return s.ID }

// Team groups users and repositories.
type Team struct {
	ID        string
	CompanyID string
	Name      string
	MemberIDs []string
}

func (t Team) GetID() string { return t.ID }

// User is a member of one or more teams.
type User struct {
	ID       string
	Username string
	Email    string
	TeamIDs  []string
}

func (u User) GetID() string { return u.ID }

// Company owns teams.
type Company struct {
	ID      string
	Name    string
	TeamIDs []string
}

func (c Company) GetID() string { return c.ID }

// Review is a code review request.
type Review struct {
	ID       string
	TeamID   string
	Title    string
	Status   string
	Reviewer []string
}

func (r Review) GetID() string { return r.ID }

// CodeError is an error captured from an observability provider.
type CodeError struct {
	ID         string
	TeamID     string
	StackTrace string
	ObjectID   string
}

func (c CodeError) GetID() string { return c.ID }
