package wordpress

const getPostsQuery = `
  query GetPosts($first: Int!, $after: String, $categoryName: String!) {
    posts(
      first: $first
      after: $after
      where: { categoryName: $categoryName }
    ) {
      nodes {
        id
        slug
        title
        date
        excerpt
        content
        featuredImage {
          node {
            sourceUrl
            altText
            mediaDetails {
              width
              height
            }
          }
        }
        author {
          node {
            name
            slug
          }
        }
        categories {
          nodes {
            id
            name
            slug
          }
        }
        tags {
          nodes {
            id
            name
            slug
          }
        }
      }
      pageInfo {
        hasNextPage
        hasPreviousPage
        startCursor
        endCursor
      }
    }
  }
`

const getPostBySlugQuery = `
  query GetPostBySlug($slug: ID!) {
    post(id: $slug, idType: SLUG) {
      id
      slug
      title
      date
      excerpt
      content
      featuredImage {
        node {
          sourceUrl
          altText
          mediaDetails {
            width
            height
          }
        }
      }
      author {
        node {
          name
          slug
        }
      }
      categories {
        nodes {
          id
          name
          slug
        }
      }
      tags {
        nodes {
          id
          name
          slug
        }
      }
    }
  }
`

const getFeaturedPostsQuery = `
  query GetFeaturedPosts($first: Int!, $categoryName: String!) {
    posts(
      first: $first
      where: {
        categoryName: $categoryName
        orderby: { field: DATE, order: DESC }
      }
    ) {
      nodes {
        id
        slug
        title
        date
        excerpt
        featuredImage {
          node {
            sourceUrl
            altText
            mediaDetails {
              width
              height
            }
          }
        }
        author {
          node {
            name
            slug
          }
        }
        categories {
          nodes {
            id
            name
            slug
          }
        }
      }
    }
  }
`

const getAllSlugsQuery = `
  query GetAllSlugs($categoryName: String!) {
    posts(where: { categoryName: $categoryName }) {
      nodes {
        slug
      }
    }
  }
`

const getCategoryQuery = `
  query GetCategory($slug: String!) {
    category(id: $slug, idType: SLUG) {
      id
      name
      slug
      description
      count
    }
  }
`
