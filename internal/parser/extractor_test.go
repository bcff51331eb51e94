package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBlocks_FindsInterfacesInOrder(t *testing.T) {
	source := `import type { Schema, Attribute } from '@strapi/strapi';

export interface ApiArticleArticle extends Schema.CollectionType {
  collectionName: 'articles';
  info: {
    singularName: 'article';
    pluralName: 'articles';
    displayName: 'Article';
  };
  attributes: {
    title: Attribute.String & Attribute.Required;
    content: Attribute.Text;
  };
}

export interface ApiAuthorAuthor extends Schema.CollectionType {
  collectionName: 'authors';
  attributes: {
    name: Attribute.String;
  };
}
`

	blocks := ExtractBlocks(source)
	require.Len(t, blocks, 2)

	assert.Equal(t, "ApiArticleArticle", blocks[0].Name)
	assert.Contains(t, blocks[0].Attributes, "title: Attribute.String & Attribute.Required;")
	assert.Contains(t, blocks[0].Attributes, "content: Attribute.Text;")
	assert.NotContains(t, blocks[0].Attributes, "displayName")
	assert.NotContains(t, blocks[0].Attributes, "name: Attribute.String")

	assert.Equal(t, "ApiAuthorAuthor", blocks[1].Name)
	assert.Contains(t, blocks[1].Attributes, "name: Attribute.String;")
}

func TestExtractBlocks_SkipsInterfacesWithoutAttributes(t *testing.T) {
	source := `export interface PluginUploadFolder extends Schema.CollectionType {
  collectionName: 'upload_folders';
}

export interface ApiTagTag extends Schema.CollectionType {
  collectionName: 'tags';
  attributes: {
    label: Attribute.String;
  };
}
`

	blocks := ExtractBlocks(source)
	require.Len(t, blocks, 1)
	assert.Equal(t, "ApiTagTag", blocks[0].Name)
	assert.Contains(t, blocks[0].Attributes, "label: Attribute.String;")
}

func TestExtractBlocks_ClosingBraceWithoutSemicolon(t *testing.T) {
	source := `export interface ApiTagTag extends Schema.CollectionType {
  attributes: {
    label: Attribute.String;
  }
}
`

	blocks := ExtractBlocks(source)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Attributes, "label: Attribute.String;")
	assert.NotContains(t, blocks[0].Attributes, "}")
}

func TestExtractBlocks_NestedClosersDoNotTerminate(t *testing.T) {
	source := `export interface ApiArticleArticle extends Schema.CollectionType {
  attributes: {
    status: Attribute.Enumeration<
      [
        'draft',
        'published'
      ]
    > &
      Attribute.Required;
    settings: Attribute.JSON &
      Attribute.DefaultTo<{
        legacy: true;
      }>;
    title: Attribute.String;
  };
}
`

	blocks := ExtractBlocks(source)
	require.Len(t, blocks, 1)

	assert.Contains(t, blocks[0].Attributes, "'published'")
	assert.Contains(t, blocks[0].Attributes, "}>;")
	assert.Contains(t, blocks[0].Attributes, "title: Attribute.String;")
}

func TestExtractBlocks_IgnoresNestedRegistryInterfaces(t *testing.T) {
	source := `export interface ApiArticleArticle extends Schema.CollectionType {
  attributes: {
    title: Attribute.String;
  };
}

declare module '@strapi/types' {
  export module Shared {
    export interface ContentTypes {
      'api::article.article': ApiArticleArticle;
    }
  }
}
`

	blocks := ExtractBlocks(source)
	require.Len(t, blocks, 1)
	assert.Equal(t, "ApiArticleArticle", blocks[0].Name)
}

func TestExtractBlocks_UnterminatedSubBlockExtendsToEOF(t *testing.T) {
	source := `export interface ApiDraftDraft extends Schema.CollectionType {
  attributes: {
    title: Attribute.String;
    body: Attribute.Text;`

	blocks := ExtractBlocks(source)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Attributes, "title: Attribute.String;")
	assert.Contains(t, blocks[0].Attributes, "body: Attribute.Text;")
}

func TestExtractBlocks_EmptySource(t *testing.T) {
	assert.Empty(t, ExtractBlocks(""))
	assert.Empty(t, ExtractBlocks("const x = 1;\n"))
}
