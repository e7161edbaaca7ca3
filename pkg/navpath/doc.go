// Package navpath defines the navigation path data model.
//
// A path is an ordered sequence of entries representing the current screen
// stack: the first entry is the screen one level below the root, and popping
// removes entries from the tail only. Entries are a tagged union holding
// either an integer or a string identifier, so a single path can mix kinds
// while remaining encodable.
//
// # Wire Format
//
// Paths encode to a JSON array of tagged entries:
//
//	[{"kind":"int","value":556},{"kind":"string","value":"Hello"}]
//
// The format has no version field and is overwritten wholesale on each save.
// Decoding rejects unknown kinds so a corrupt or foreign file never produces
// a partially-populated path.
//
// # Usage
//
//	p := navpath.Path{}.Push(navpath.Int(556), navpath.String("Hello"))
//	data, err := navpath.Encode(p)
//	if err != nil {
//	    return err
//	}
//	restored, err := navpath.Decode(data)
//	if err != nil {
//	    return err
//	}
//	restored.Equal(p) // true
package navpath
