package sprite

// Cache memoizes one mask per shape. Not safe for concurrent use; the frame loop owns it.
type Cache struct {
	params Params
	masks  map[Shape]*Mask
}

// NewCache creates an empty cache that rasterizes with p.
func NewCache(p Params) *Cache {
	return &Cache{
		params: p,
		masks:  make(map[Shape]*Mask, int(numShapes)),
	}
}

// Get returns the mask for shape, rasterizing it on first use.
func (c *Cache) Get(shape Shape) *Mask {
	if m, ok := c.masks[shape]; ok {
		return m
	}
	m := GenerateWith(shape, c.params)
	c.masks[shape] = m
	return m
}

// Len returns the number of cached masks.
func (c *Cache) Len() int {
	return len(c.masks)
}
