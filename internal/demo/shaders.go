package demo

// Flat 2D shapes in pixel space, filled with one colour.
const (
	flatVertexShader = `
		#version 410
		in vec2 a_position;
		uniform mat3 u_matrix;
		void main() {
			gl_Position = vec4((u_matrix * vec3(a_position, 1)).xy, 0, 1);
		}
	`

	flatFragmentShader = `
		#version 410
		uniform vec4 u_color;
		out vec4 outColor;
		void main() {
			outColor = u_color;
		}
	`
)

// Solid models with a colour per vertex.
const (
	colorVertexShader = `
		#version 410
		in vec4 a_position;
		in vec4 a_color;
		uniform mat4 u_matrix;
		out vec4 v_color;
		void main() {
			gl_Position = u_matrix * a_position;
			v_color = a_color;
		}
	`

	colorFragmentShader = `
		#version 410
		in vec4 v_color;
		out vec4 outColor;
		void main() {
			outColor = v_color;
		}
	`
)

// The floor is checkered in blue and white from its local x and z.
const (
	floorVertexShader = `
		#version 410
		in vec4 a_position;
		uniform mat4 u_matrix;
		out vec2 v_coord;
		void main() {
			gl_Position = u_matrix * a_position;
			v_coord = a_position.xz;
		}
	`

	floorFragmentShader = `
		#version 410
		in vec2 v_coord;
		out vec4 outColor;
		void main() {
			float total = floor(v_coord.x) + floor(v_coord.y);
			bool even = mod(total, 2.0) == 0.0;
			outColor = even ? vec4(0.0, 0.0, 1.0, 1.0) : vec4(1.0, 1.0, 1.0, 1.0);
		}
	`
)
