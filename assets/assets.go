package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/automoto/folio/viewport"
	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:data
	dataFS embed.FS
)

const (
	GalleryPath  = "data/gallery.tmx"
	ProfilesPath = "data/profiles.yaml"
	AboutPath    = "data/about.yaml"

	projectsGroup = "Projects"
)

// Project is one gallery card: where it sits in the world and what it links to.
type Project struct {
	viewport.Entity
	Name        string
	Description string
	Link        string
	Thumbnail   string
}

// HasLink reports whether clicking the card should open something.
func (p Project) HasLink() bool {
	return p.Link != "" && p.Link != "#"
}

type SocialLinks struct {
	Instagram string
	LinkedIn  string
	YouTube   string
}

// Gallery is the seed layout authored in Tiled. Map pixels are world units
// with the map centre at the world origin.
type Gallery struct {
	Title       string
	Footer      string
	Social      SocialLinks
	WorldWidth  float64
	WorldHeight float64
	Projects    []Project
}

// Entities returns the camera-facing part of every project.
func (g Gallery) Entities() []viewport.Entity {
	out := make([]viewport.Entity, len(g.Projects))
	for i, p := range g.Projects {
		out[i] = p.Entity
	}
	return out
}

// WithLayout returns a copy of g with positions taken from layout, matched
// by ID. Projects missing from layout keep their authored position.
func (g Gallery) WithLayout(layout []viewport.Entity) Gallery {
	byID := make(map[string]viewport.Entity, len(layout))
	for _, e := range layout {
		byID[e.ID] = e
	}
	projects := make([]Project, len(g.Projects))
	for i, p := range g.Projects {
		if e, ok := byID[p.ID]; ok {
			p.X, p.Y, p.Z = e.X, e.Y, e.Z
		}
		projects[i] = p
	}
	g.Projects = projects
	return g
}

var ErrNoProjects = errors.New("gallery has no projects")

type GalleryLoader struct {
	fsys fs.FS
}

func NewGalleryLoader(fsys fs.FS) *GalleryLoader {
	return &GalleryLoader{fsys: fsys}
}

// Load reads the Tiled map at path. Projects come from the "Projects" object
// group; per-card data lives in object properties.
func (l *GalleryLoader) Load(path string) (Gallery, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Gallery{}, fmt.Errorf("assets: load gallery %s: %w", path, err)
	}

	g := Gallery{
		WorldWidth:  float64(m.Width * m.TileWidth),
		WorldHeight: float64(m.Height * m.TileHeight),
	}
	if m.Properties != nil {
		g.Title = m.Properties.GetString("title")
		g.Footer = m.Properties.GetString("footer")
		g.Social = SocialLinks{
			Instagram: m.Properties.GetString("instagram"),
			LinkedIn:  m.Properties.GetString("linkedin"),
			YouTube:   m.Properties.GetString("youtube"),
		}
	}

	seen := map[string]bool{}
	for _, og := range m.ObjectGroups {
		if og.Name != projectsGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Properties == nil {
				return Gallery{}, fmt.Errorf("assets: load gallery %s: object %d has no properties", path, o.ID)
			}
			id := o.Properties.GetString("id")
			if id == "" {
				id = strconv.Itoa(int(o.ID))
			}
			if seen[id] {
				return Gallery{}, fmt.Errorf("assets: load gallery %s: duplicate project id %q", path, id)
			}
			seen[id] = true

			g.Projects = append(g.Projects, Project{
				Entity: viewport.Entity{
					ID:     id,
					X:      o.X - g.WorldWidth/2,
					Y:      o.Y - g.WorldHeight/2,
					Z:      o.Properties.GetFloat("z"),
					Width:  o.Width,
					Height: o.Height,
				},
				Name:        o.Name,
				Description: o.Properties.GetString("description"),
				Link:        o.Properties.GetString("link"),
				Thumbnail:   o.Properties.GetString("thumbnail"),
			})
		}
	}

	if len(g.Projects) == 0 {
		return Gallery{}, fmt.Errorf("assets: load gallery %s: %w", path, ErrNoProjects)
	}
	return g, nil
}

// MustLoadGallery loads the embedded gallery and panics if it is broken.
func MustLoadGallery() Gallery {
	g, err := NewGalleryLoader(dataFS).Load(GalleryPath)
	if err != nil {
		panic(err)
	}
	return g
}

// DefaultProfiles parses the embedded view profiles.
func DefaultProfiles() (viewport.ProfileSet, error) {
	data, err := dataFS.ReadFile(ProfilesPath)
	if err != nil {
		return viewport.ProfileSet{}, fmt.Errorf("assets: read %s: %w", ProfilesPath, err)
	}
	return viewport.ParseProfiles(data)
}

// LoadProfilesFile parses a profiles document from disk.
func LoadProfilesFile(path string) (viewport.ProfileSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return viewport.ProfileSet{}, fmt.Errorf("assets: read profiles: %w", err)
	}
	set, err := viewport.ParseProfiles(data)
	if err != nil {
		return viewport.ProfileSet{}, fmt.Errorf("assets: %s: %w", path, err)
	}
	return set, nil
}

type Experience struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
}

// About is the content of the About page.
type About struct {
	Owner       string       `yaml:"owner"`
	Heading     string       `yaml:"heading"`
	Description string       `yaml:"description"`
	Skills      []string     `yaml:"skills"`
	Experience  []Experience `yaml:"experience"`
	Log         []string     `yaml:"log"`
}

func ParseAbout(data []byte) (About, error) {
	a := About{Heading: "ABOUT"}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return About{}, fmt.Errorf("assets: parse about: %w", err)
	}
	if a.Owner == "" {
		return About{}, errors.New("assets: parse about: owner is required")
	}
	return a, nil
}

func MustLoadAbout() About {
	data, err := dataFS.ReadFile(AboutPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to read %s: %v", AboutPath, err))
	}
	a, err := ParseAbout(data)
	if err != nil {
		panic(err)
	}
	return a
}
