package highlight

import (
	"sync"

	"github.com/prismline/hlcore/internal/coreface"
	"github.com/prismline/hlcore/internal/display"
)

// FaceRegistry resolves face names ("LineNumbers", "Search", a user theme
// name, ...) to concrete Face values. Grounded on the FaceRegistry/get_face
// references throughout highlighters.cc and generalized from the teacher's
// token-keyed internal/renderer/highlight/theme.go into a name-keyed one,
// matching Kakoune's theme-name-driven faces instead of token-type keys.
type FaceRegistry struct {
	mu    sync.RWMutex
	faces map[string]coreface.Face
}

// Faces is the process-wide default face registry, pre-populated with the
// built-in face names the simple highlighters reference.
var Faces = newDefaultFaceRegistry()

func newDefaultFaceRegistry() *FaceRegistry {
	r := &FaceRegistry{faces: make(map[string]coreface.Face)}
	r.Set("Default", coreface.DefaultFace)
	r.Set("LineNumbers", coreface.Face{FG: coreface.NamedColor("bright-black")})
	r.Set("LineNumberCursor", coreface.Face{FG: coreface.NamedColor("yellow"), Attrs: coreface.Bold})
	r.Set("MatchingChar", coreface.Face{Attrs: coreface.Bold})
	r.Set("Search", coreface.Face{BG: coreface.NamedColor("yellow")})
	r.Set("PrimarySelection", coreface.Face{BG: coreface.NamedColor("blue")})
	r.Set("SecondarySelection", coreface.Face{BG: coreface.NamedColor("cyan")})
	r.Set("PrimaryCursor", coreface.Face{BG: coreface.NamedColor("white"), FG: coreface.NamedColor("black")})
	r.Set("SecondaryCursor", coreface.Face{BG: coreface.NamedColor("bright-white"), FG: coreface.NamedColor("black")})
	r.Set("Whitespace", coreface.Face{FG: coreface.NamedColor("bright-black")})
	r.Set("Error", coreface.Face{FG: coreface.NamedColor("red"), Attrs: coreface.Bold})
	r.Set("Information", coreface.Face{FG: coreface.NamedColor("cyan")})
	return r
}

// Set registers or overwrites a named face.
func (r *FaceRegistry) Set(name string, f coreface.Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[name] = f
}

// Resolve returns the face registered under name, or DefaultFace if
// unregistered (an unknown face name never aborts a highlight pass).
func (r *FaceRegistry) Resolve(name string) coreface.Face {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.faces[name]; ok {
		return f
	}
	return coreface.DefaultFace
}

// Has reports whether name is a known face, used by factories that must
// validate a face spec at construction time (fill_factory's
// "get_face(facespec); // validate param").
func (r *FaceRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.faces[name]
	return ok
}

// applyFace returns an ApplyFunc that overlays face onto each visited
// atom's existing face. Grounded on the apply_face lambda in
// highlighters.cc.
func applyFace(face coreface.Face) ApplyFunc {
	return func(atom *display.Atom) {
		atom.Face = atom.Face.Overlay(face)
	}
}
