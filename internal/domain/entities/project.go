package entities

// RepoProjectType is the best-effort ecosystem guess for a repository.
type RepoProjectType string

const (
	ProjectTypeNodeJS          RepoProjectType = "NodeJS"
	ProjectTypeJava            RepoProjectType = "Java"
	ProjectTypeDotNetCore      RepoProjectType = "DotNetCore"
	ProjectTypeDotNetFramework RepoProjectType = "DotNetFramework"
	ProjectTypeUnknown         RepoProjectType = "Unknown"
)

// Project describes one discovered .NET project file.
type Project struct {
	Path    string `json:"path"`    // Directory containing the project file
	Name    string `json:"name"`    // File name without extension
	Version string `json:"version"` // Matched target framework
}

// IdentifyRepoResult is produced fresh on every identification.
type IdentifyRepoResult struct {
	ProjectType RepoProjectType `json:"projectType"`
	Projects    []Project       `json:"projects,omitempty"`
}

// ReposScm is the repository record handed to the identifier.
type ReposScm struct {
	ID      string      `json:"id,omitempty"`
	Path    string      `json:"path"`
	Folder  string      `json:"folder,omitempty"`
	Remotes []GitRemote `json:"remotes,omitempty"`
}
