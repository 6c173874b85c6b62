package types

// RepositoryInfo describes one configured local repository
type RepositoryInfo struct {
	// Path is the repository file as configured
	Path string

	// Format is the detected file format
	Format string

	// Exists is false when the file has not been created yet
	Exists bool

	// Packages is the number of installed packages in the file
	Packages int
}

// ListRepositoriesResult is returned by the repositories command
type ListRepositoriesResult struct {
	Repositories []RepositoryInfo
}

// TotalPackages sums the package counts of every repository
func (r *ListRepositoriesResult) TotalPackages() int {
	total := 0
	for _, info := range r.Repositories {
		total += info.Packages
	}
	return total
}
