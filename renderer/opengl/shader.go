package opengl

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

//go:embed shaders/default.vert
var defaultVertexShader string

//go:embed shaders/default.frag
var defaultFragmentShader string

type Program struct {
	ID                           uint32
	VertexShader, FragmentShader uint32
}

func (p *Program) Delete() {
	gl.DetachShader(p.ID, p.VertexShader)
	gl.DetachShader(p.ID, p.FragmentShader)
	gl.DeleteProgram(p.ID)
	gl.DeleteShader(p.VertexShader)
	gl.DeleteShader(p.FragmentShader)
}

// Get the location of a named uniform.
func (p *Program) Uniform(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
}

// Compile and link a program from vertex and fragment shader sources.
func LoadProgram(vertexShaderText, fragmentShaderText string) (*Program, error) {
	p := &Program{}

	vs, err := LoadShader(gl.VERTEX_SHADER, vertexShaderText)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	p.VertexShader = vs

	fs, err := LoadShader(gl.FRAGMENT_SHADER, fragmentShaderText)
	if err != nil {
		gl.DeleteShader(p.VertexShader)
		return nil, errors.Wrap(err, "fragment shader")
	}
	p.FragmentShader = fs

	p.ID = gl.CreateProgram()
	gl.AttachShader(p.ID, p.VertexShader)
	gl.AttachShader(p.ID, p.FragmentShader)
	gl.LinkProgram(p.ID)

	var isLinked int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &isLinked)
	if isLinked == gl.FALSE {
		var logSize int32
		gl.GetProgramiv(p.ID, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetProgramInfoLog(p.ID, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		logger.Errorf("failed to link program:\n%s", errString)

		p.Delete()
		return nil, errors.Errorf("failed to link program: %q", errString)
	}
	return p, nil
}

// Compile a single shader stage.
func LoadShader(xtype uint32, text string) (uint32, error) {
	shader := gl.CreateShader(xtype)
	csource, free := gl.Strs(text + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		var logSize int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logSize)
		buf := make([]uint8, logSize+1)
		gl.GetShaderInfoLog(shader, int32(len(buf)), &logSize, &buf[0])
		errString := string(buf[:logSize])
		logger.Errorf("failed to compile shader:\n%s", errString)

		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile shader: %q", errString)
	}
	return shader, nil
}
