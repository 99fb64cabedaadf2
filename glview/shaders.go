package glview

// Shader sources are null terminated for the GL API.

const objVertexSource = `#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 textureCoordinates;

out vec3 Normal;
out vec3 FragmentPos;
out vec2 objTextureCoordinate;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
	FragmentPos = vec3(model * vec4(position, 1.0));
	Normal = mat3(transpose(inverse(model))) * normal;
	objTextureCoordinate = vec2(textureCoordinates.x, 1.0 - textureCoordinates.y);
}
` + "\x00"

const objFragmentSource = `#version 330 core
in vec3 Normal;
in vec3 FragmentPos;
in vec2 objTextureCoordinate;

out vec4 objColor;

uniform sampler2D uTexture;
uniform vec3 light0Color;
uniform vec3 light0Pos;
uniform vec3 light1Color;
uniform vec3 light1Pos;
uniform vec3 viewPosition;

// Phong: ambient + diffuse + specular, modulated by the surface texture.
vec3 lightCalc(vec3 fragPos, vec3 objTex, vec3 norm, vec3 viewDir, vec3 lightColor, vec3 lightPos) {
	const float ambientStrength = 0.1;
	const float highlightSize = 16.0;
	const float specularIntensity = 0.5;
	vec3 ambient = ambientStrength * lightColor;

	vec3 lightDirection = normalize(lightPos - fragPos);
	float impact = max(dot(norm, lightDirection), 0.1);
	vec3 diffuse = impact * lightColor;

	vec3 reflectDir = reflect(-lightDirection, norm);
	float specularComponent = pow(max(dot(viewDir, reflectDir), 0.0), highlightSize);
	vec3 specular = specularIntensity * specularComponent * lightColor;
	return (ambient + diffuse + specular) * objTex;
}

void main() {
	vec3 objTexture = texture(uTexture, objTextureCoordinate).xyz;
	vec3 norm = normalize(Normal);
	vec3 viewDir = normalize(viewPosition - FragmentPos);
	vec3 phong = lightCalc(FragmentPos, objTexture, norm, viewDir, light0Color, light0Pos);
	phong += lightCalc(FragmentPos, objTexture, norm, viewDir, light1Color, light1Pos);
	objColor = vec4(phong, 1.0);
}
` + "\x00"

const lampVertexSource = `#version 330 core
layout(location = 0) in vec3 position;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
}
` + "\x00"

const lampFragmentSource = `#version 330 core
out vec4 color;

void main() {
	color = vec4(1.0);
}
` + "\x00"

// The HUD quad is a unit square mapped to uRect = (left, top, right, bottom) in NDC.
const hudVertexSource = `#version 330 core
layout(location = 0) in vec2 aPos;
out vec2 vTexCoord;

uniform vec4 uRect;

void main() {
	vTexCoord = aPos;
	gl_Position = vec4(mix(uRect.x, uRect.z, aPos.x), mix(uRect.y, uRect.w, aPos.y), 0.0, 1.0);
}
` + "\x00"

const hudFragmentSource = `#version 330 core
in vec2 vTexCoord;
out vec4 fragColor;

uniform sampler2D uHUD;

void main() {
	fragColor = texture(uHUD, vTexCoord);
}
` + "\x00"
