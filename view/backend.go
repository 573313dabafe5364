package view

// Backend creates GPU resources. Implementations report shader compile
// failures and unknown attributes as errors.
type Backend interface {
	Program(vertexShader, fragmentShader string) (Program, error)
	Buffer(data []byte) (Buffer, error)
	VertexArray(prog Program, buf Buffer, attr string) (VertexArray, error)
}

// Program is a linked shader program.
type Program interface {
	// Write sets the named uniform from raw little-endian bytes.
	Write(uniform string, data []byte) error
}

// Buffer is vertex data uploaded to the GPU.
type Buffer interface{}

// VertexArray binds a program to a buffer attribute.
type VertexArray interface {
	// Render issues one triangle-list draw over the whole buffer.
	Render() error
}
