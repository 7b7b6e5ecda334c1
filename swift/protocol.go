// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package swift

// Protocol models a Swift protocol declaration.
type Protocol struct {
	// Protocol modifiers.
	Modifiers []Modifier
	// Declared method requirements.
	Methods []Method
	// Protocols this protocol refines.
	Implements []Swift
	// Generic parameters.
	Parameters *Tokens

	attributes *Tokens
	name       string
}

// NewProtocol returns a public protocol with the given name.
func NewProtocol(name string) Protocol {
	return Protocol{
		Modifiers:  []Modifier{Public},
		Parameters: &Tokens{},
		attributes: &Tokens{},
		name:       name,
	}
}

// Attribute adds an attribute on its own line before the protocol.
func (p *Protocol) Attribute(attribute *Tokens) {
	p.attributes.PushTokens(attribute)
}

// Name returns the name of the protocol.
func (p Protocol) Name() string {
	return p.name
}

// Tokens returns the protocol as a token stream.
func (p Protocol) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(p.Modifiers).Elements())
	sig.Append("protocol")
	sig.AppendTokens(nameWithParameters(p.name, p.Parameters))
	appendImplements(sig, p.Implements)

	return declaration(sig, p.attributes, memberBody(nil, nil, p.Methods))
}
