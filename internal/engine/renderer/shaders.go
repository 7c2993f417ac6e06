package renderer

const vertexShader = `#version 410 core
layout(location = 0) in vec4 a_position;
layout(location = 1) in vec4 a_color;
layout(location = 2) in vec2 a_uv;
layout(location = 3) in vec3 a_normal;

uniform mat4 u_viewProjection;

out vec4 v_color;
out vec2 v_uv;
out vec3 v_normal;
out vec3 v_world;

void main() {
    v_color = a_color;
    v_uv = a_uv;
    v_normal = a_normal;
    v_world = a_position.xyz;
    gl_Position = u_viewProjection * a_position;
}
`

// Brush materials are approximated: vertex colour, optional diffuse
// from the flat normals, a uv-scrolling pulse for time-driven brushes
// and a rim term for view-dependent ones.
const fragmentShader = `#version 410 core
in vec4 v_color;
in vec2 v_uv;
in vec3 v_normal;
in vec3 v_world;

uniform int u_lit;
uniform int u_animated;
uniform int u_viewDependent;
uniform float u_time;
uniform vec3 u_cameraPosition;

out vec4 fragColor;

void main() {
    vec3 color = v_color.rgb;

    vec3 n = u_lit == 1 ? normalize(v_normal) : normalize(cross(dFdx(v_world), dFdy(v_world)));
    if (!gl_FrontFacing) {
        n = -n;
    }

    if (u_lit == 1) {
        float diffuse = max(dot(n, normalize(vec3(0.3, 1.0, 0.5))), 0.0);
        color *= 0.35 + 0.65 * diffuse;
    }
    if (u_animated == 1) {
        color *= 0.75 + 0.25 * sin(u_time * 3.0 - v_uv.x * 12.566);
    }
    if (u_viewDependent == 1) {
        vec3 view = normalize(u_cameraPosition - v_world);
        color += 0.25 * pow(1.0 - abs(dot(n, view)), 2.0);
    }

    fragColor = vec4(color, v_color.a);
}
`
