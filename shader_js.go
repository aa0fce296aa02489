package main

import (
	"errors"
	"fmt"
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var errContextLost = errors.New("WebGL context lost")

func compileShader(gl *webgl.WebGL, typ webgl.ShaderType, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		name := "VERTEX_SHADER"
		if typ == gl.FRAGMENT_SHADER {
			name = "FRAGMENT_SHADER"
		}
		return webgl.Shader(js.Null()), fmt.Errorf("compile failed (%s)", name)
	}
	return s, nil
}

type shaderProgram struct {
	program    webgl.Program
	projection webgl.Location
	modelView  webgl.Location
}

func newShaderProgram(gl *webgl.WebGL, vsSrc, fsSrc string) (*shaderProgram, error) {
	vs, err := compileShader(gl, gl.VERTEX_SHADER, vsSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(gl, gl.FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return nil, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return nil, errContextLost
		}
		return nil, errors.New("link failed: " + gl.GetProgramInfoLog(program))
	}
	return &shaderProgram{
		program:    program,
		projection: gl.GetUniformLocation(program, "uProjectionMatrix"),
		modelView:  gl.GetUniformLocation(program, "uModelViewMatrix"),
	}, nil
}
